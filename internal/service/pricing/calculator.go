package pricing

import (
	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// Input входные данные расчёта. Значения считаются провалидированными вызывающей стороной
type Input struct {
	BasePrice      money.Cents
	BaseGuests     int
	Guests         int
	AddOns         []domain.ResolvedAddOn
	ExtraGuestFee  money.Cents
	CleaningFee    money.Cents
	DepositPercent float64
}

// Calculate считает полную стоимость бронирования.
// Вся арифметика в центах, депозит округляется в центах, остаток получается вычитанием,
// поэтому DepositAmount + BalanceRemaining == Total всегда
func Calculate(in Input) domain.PricingBreakdown {
	extraGuests := in.Guests - in.BaseGuests
	if extraGuests < 0 {
		extraGuests = 0
	}
	extraGuestTotal := in.ExtraGuestFee.Mul(extraGuests)

	addOnTotal := money.Zero
	for _, a := range in.AddOns {
		addOnTotal += a.LineTotal()
	}

	subtotal := in.BasePrice + extraGuestTotal + addOnTotal
	total := subtotal + in.CleaningFee
	deposit := total.Percent(in.DepositPercent)
	balance := money.Max(total-deposit, money.Zero)

	return domain.PricingBreakdown{
		BasePrice:        in.BasePrice,
		ExtraGuestCount:  extraGuests,
		ExtraGuestFee:    in.ExtraGuestFee,
		ExtraGuestTotal:  extraGuestTotal,
		AddOnTotal:       addOnTotal,
		Subtotal:         subtotal,
		CleaningFee:      in.CleaningFee,
		Total:            total,
		DepositPercent:   in.DepositPercent,
		DepositAmount:    deposit,
		BalanceRemaining: balance,
	}
}
