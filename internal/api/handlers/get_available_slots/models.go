package get_available_slots

import (
	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-PartyBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     string         `json:"date"` // "2026-11-14"
	Location string         `json:"location"`
	Slots    []SlotResponse `json:"slots"`
}

type SlotResponse struct {
	StartTime         string `json:"startTime"` // "10:00"
	Available         bool   `json:"available"`
	SupportsExtraHour bool   `json:"supportsExtraHour"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:         s.StartTime.String(),
			Available:         s.Available,
			SupportsExtraHour: s.SupportsExtraHour,
		})
	}

	return &AvailableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Location: resp.Location,
		Slots:    slots,
	}
}
