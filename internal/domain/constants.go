package domain

import "github.com/m04kA/SMC-PartyBookingService/pkg/money"

// Booking defaults
const (
	DefaultPartyDurationMinutes = 120
	DefaultExtraHourMinutes     = 60
	DefaultBufferMinutes        = 30
	DefaultMaxGuests            = 60
)

// Pricing fallbacks used when a pricing_config key is absent
const (
	DefaultCleaningFee         money.Cents = 5000
	DefaultDepositPercent                  = 50.0
	DefaultExtraGuestFeeSource             = "extra_child"
	DefaultExtraGuestFee       money.Cents = 4000
)

// Request limits
const (
	MinAddOnQuantity     = 1
	MaxAddOnQuantity     = 10
	DefaultAddOnQuantity = 1
	MaxNotesLength       = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
