package domain

import "time"

// Booking event types
const (
	EventBookingCreated       = "booking.created"
	EventBookingCancelled     = "booking.cancelled"
	EventBookingStatusUpdated = "booking.statusUpdated"
	EventBookingDepositPaid   = "booking.depositPaid"
	EventPricingRecalculated  = "booking.pricingRecalculated"
)

// Event is a published domain event
type Event struct {
	ID        int64                  `json:"id"`
	Type      string                 `json:"type"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"createdAt"`
}
