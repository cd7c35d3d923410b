package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-PartyBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
)

type fakeUseCase struct {
	last *getAvailableSlots.Request
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailableSlots.Response{
		Date:     req.Date,
		Location: req.Location,
		Slots: []getAvailableSlots.Slot{
			{StartTime: "10:00", Available: false},
			{StartTime: "12:30", Available: true, SupportsExtraHour: true},
		},
	}, nil
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/slots?location=Albany&date=2026-11-14", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC), uc.last.Date)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-11-14", body.Date)
	require.Len(t, body.Slots, 2)
	assert.False(t, body.Slots[0].Available)
	assert.True(t, body.Slots[1].SupportsExtraHour)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		err    error
		status int
	}{
		{"missing location", "/api/v1/bookings/slots?date=2026-11-14", nil, http.StatusBadRequest},
		{"missing date", "/api/v1/bookings/slots?location=Albany", nil, http.StatusBadRequest},
		{"bad date", "/api/v1/bookings/slots?location=Albany&date=11/14/2026", nil, http.StatusBadRequest},
		{"unsupported location", "/api/v1/bookings/slots?location=Troy&date=2026-11-14", getAvailableSlots.ErrUnsupportedLocation, http.StatusBadRequest},
		{"internal", "/api/v1/bookings/slots?location=Albany&date=2026-11-14", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
