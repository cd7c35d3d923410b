package check_availability

import (
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-PartyBookingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Location        string `json:"location" validate:"required"`
	EventDate       string `json:"eventDate" validate:"required"` // "2026-11-14"
	StartTime       string `json:"startTime" validate:"required"` // "10:00"
	IgnoreBookingID *int64 `json:"ignoreBookingId,omitempty" validate:"omitempty,gt=0"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available bool `json:"available"`
}

func (r *CheckAvailabilityRequest) ToUseCaseRequest(guardianID int64) (*checkAvailability.Request, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		GuardianID:      guardianID,
		Location:        r.Location,
		EventDate:       eventDate,
		StartTime:       startTime,
		IgnoreBookingID: r.IgnoreBookingID,
	}, nil
}
