package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

// TimeWindow is a half-open interval [Start, End)
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow combines a calendar date with HH:MM start and end times.
// An end that is not after the start is rejected.
func NewTimeWindow(date time.Time, start, end types.TimeString, loc *time.Location) (TimeWindow, error) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)

	s, err := start.On(day)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: start time %q: %v", ErrValidation, start, err)
	}
	e, err := end.On(day)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: end time %q: %v", ErrValidation, end, err)
	}
	if !e.After(s) {
		return TimeWindow{}, fmt.Errorf("%w: end time %s is not after start time %s", ErrValidation, end, start)
	}

	return TimeWindow{Start: s, End: e}, nil
}

// Buffered pads the window by d on both sides
func (w TimeWindow) Buffered(d time.Duration) TimeWindow {
	return TimeWindow{Start: w.Start.Add(-d), End: w.End.Add(d)}
}

// Overlaps reports strict overlap; windows that only touch do not overlap
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Extend moves the end of the window by d
func (w TimeWindow) Extend(d time.Duration) TimeWindow {
	return TimeWindow{Start: w.Start, End: w.End.Add(d)}
}

func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
