package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

// buildSlots размечает каждый слот сетки: свободно ли базовое окно и окно с продлением.
// Продление проверяется только для свободного слота
func buildSlots(
	date time.Time,
	grid []types.TimeString,
	durationMinutes int,
	extraHourMinutes int,
	loc *time.Location,
	bookings []*domain.Booking,
	detector ConflictDetector,
) ([]Slot, error) {
	slots := make([]Slot, 0, len(grid))

	for _, start := range grid {
		slot := Slot{StartTime: start}

		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			// Праздник не помещается в сутки
			slots = append(slots, slot)
			continue
		}

		window, err := domain.NewTimeWindow(date, start, end, loc)
		if err != nil {
			return nil, err
		}

		slot.Available = !detector.Conflicts(window, bookings, nil)

		if slot.Available {
			if _, err := end.AddMinutes(extraHourMinutes); err == nil {
				extended := window.Extend(time.Duration(extraHourMinutes) * time.Minute)
				slot.SupportsExtraHour = !detector.Conflicts(extended, bookings, nil)
			}
		}

		slots = append(slots, slot)
	}

	return slots, nil
}
