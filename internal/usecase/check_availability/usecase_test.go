package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
	"github.com/m04kA/SMC-PartyBookingService/pkg/ptr"
)

type fakeChecker struct {
	available bool
	err       error

	gotWindow  domain.TimeWindow
	gotExclude *int64
}

func (f *fakeChecker) IsAvailable(_ context.Context, _ string, window domain.TimeWindow, excludeID *int64) (bool, error) {
	f.gotWindow = window
	f.gotExclude = excludeID
	return f.available, f.err
}

var eventDate = time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC)

func TestExecute_UsesBaseDurationAndIgnoreID(t *testing.T) {
	checker := &fakeChecker{available: true}
	uc := NewUseCase(checker, 120, time.UTC, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		Location:        "Albany",
		EventDate:       eventDate,
		StartTime:       "15:00",
		IgnoreBookingID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 2*time.Hour, checker.gotWindow.Duration())
	assert.Equal(t, 15, checker.gotWindow.Start.Hour())
	require.NotNil(t, checker.gotExclude)
	assert.Equal(t, int64(7), *checker.gotExclude)
}

func TestExecute_LateStartNeverFits(t *testing.T) {
	uc := NewUseCase(&fakeChecker{available: true}, 120, time.UTC, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Location: "Albany", EventDate: eventDate, StartTime: "23:00"})
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_Errors(t *testing.T) {
	uc := NewUseCase(&fakeChecker{}, 120, time.UTC, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Location: "Albany", EventDate: eventDate, StartTime: "9am"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc = NewUseCase(&fakeChecker{err: errors.New("db down")}, 120, time.UTC, logger.NewNop())
	_, err = uc.Execute(context.Background(), &Request{Location: "Albany", EventDate: eventDate, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInternal)
}
