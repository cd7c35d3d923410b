package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

var day = time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC)

func window(t *testing.T, start, end string) TimeWindow {
	t.Helper()
	w, err := NewTimeWindow(day, types.TimeString(start), types.TimeString(end), time.UTC)
	require.NoError(t, err)
	return w
}

func TestTimeWindow_OverlapIsSymmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{"identical", [2]string{"10:00", "12:00"}, [2]string{"10:00", "12:00"}, true},
		{"partial", [2]string{"10:00", "12:00"}, [2]string{"11:00", "13:00"}, true},
		{"contained", [2]string{"10:00", "14:00"}, [2]string{"11:00", "12:00"}, true},
		{"touching", [2]string{"10:00", "12:00"}, [2]string{"12:00", "14:00"}, false},
		{"disjoint", [2]string{"10:00", "11:00"}, [2]string{"15:00", "17:00"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := window(t, tc.a[0], tc.a[1])
			b := window(t, tc.b[0], tc.b[1])
			assert.Equal(t, tc.want, a.Overlaps(b))
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
		})
	}
}

func TestTimeWindow_BufferBoundaries(t *testing.T) {
	buffer := 30 * time.Minute
	existing := window(t, "10:00", "12:00").Buffered(buffer)

	// Зазор ровно в два буфера: буферизованные окна только касаются
	exact := window(t, "13:00", "15:00").Buffered(buffer)
	assert.False(t, existing.Overlaps(exact))

	// На минуту меньше: конфликт
	short := window(t, "12:59", "14:59").Buffered(buffer)
	assert.True(t, existing.Overlaps(short))
	assert.True(t, short.Overlaps(existing))
}

func TestNewTimeWindow_RejectsMalformed(t *testing.T) {
	_, err := NewTimeWindow(day, "25:00", "12:00", time.UTC)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewTimeWindow(day, "12:00", "12:00", time.UTC)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewTimeWindow(day, "bad", "", time.UTC)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTimeWindow_UsesLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	w, err := NewTimeWindow(day, "10:00", "12:00", ny)
	require.NoError(t, err)
	assert.Equal(t, ny, w.Start.Location())
	assert.Equal(t, 10, w.Start.Hour())
	assert.Equal(t, 2*time.Hour, w.Duration())
	assert.Equal(t, 3*time.Hour, w.Extend(time.Hour).Duration())
}
