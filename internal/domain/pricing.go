package domain

import "github.com/m04kA/SMC-PartyBookingService/pkg/money"

// Pricing config keys as stored in the key/value table
const (
	PricingKeyCleaningFee         = "cleaning_fee"
	PricingKeyDepositPercentage   = "deposit_percentage"
	PricingKeyExtraGuestFeeSource = "extra_guest_fee_source"
)

// PricingConfig holds the tunable pricing knobs.
//
// The per-guest overage fee is not stored here directly: it is the price of the
// add-on whose code is ExtraGuestFeeSource, and ExtraGuestFallbackFee applies
// when the catalog has no such add-on.
type PricingConfig struct {
	CleaningFee           money.Cents
	DepositPercent        float64
	ExtraGuestFeeSource   string
	ExtraGuestFallbackFee money.Cents
}

// DefaultPricingConfig returns the hardcoded fallbacks used for absent keys
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		CleaningFee:           DefaultCleaningFee,
		DepositPercent:        DefaultDepositPercent,
		ExtraGuestFeeSource:   DefaultExtraGuestFeeSource,
		ExtraGuestFallbackFee: DefaultExtraGuestFee,
	}
}

// PricingBreakdown is the full price of a booking
type PricingBreakdown struct {
	BasePrice        money.Cents
	ExtraGuestCount  int
	ExtraGuestFee    money.Cents
	ExtraGuestTotal  money.Cents
	AddOnTotal       money.Cents
	Subtotal         money.Cents
	CleaningFee      money.Cents
	Total            money.Cents
	DepositPercent   float64
	DepositAmount    money.Cents
	BalanceRemaining money.Cents
}
