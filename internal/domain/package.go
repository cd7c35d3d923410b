package domain

import "github.com/m04kA/SMC-PartyBookingService/pkg/money"

// PartyPackage is a purchasable party template, read-only for the booking flow
type PartyPackage struct {
	ID              int64
	Name            string
	BasePrice       money.Cents
	BaseGuests      int
	DurationMinutes int // 0 falls back to DefaultPartyDurationMinutes
	Active          bool
}

// Duration returns the base party length in minutes
func (p *PartyPackage) Duration() int {
	if p.DurationMinutes <= 0 {
		return DefaultPartyDurationMinutes
	}
	return p.DurationMinutes
}
