package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

func TestCalculate_BasePackageScenario(t *testing.T) {
	got := Calculate(Input{
		BasePrice:      39900,
		BaseGuests:     12,
		Guests:         12,
		ExtraGuestFee:  4000,
		CleaningFee:    5000,
		DepositPercent: 50,
	})

	assert.Equal(t, money.Cents(39900), got.Subtotal)
	assert.Equal(t, money.Cents(44900), got.Total)
	assert.Equal(t, money.Cents(22450), got.DepositAmount)
	assert.Equal(t, money.Cents(22450), got.BalanceRemaining)
	assert.Equal(t, money.Zero, got.ExtraGuestTotal)
}

func TestCalculate_ExtraGuests(t *testing.T) {
	for guests := 0; guests <= 30; guests++ {
		got := Calculate(Input{
			BasePrice:      39900,
			BaseGuests:     12,
			Guests:         guests,
			ExtraGuestFee:  4000,
			DepositPercent: 50,
		})

		if guests <= 12 {
			assert.Equal(t, money.Zero, got.ExtraGuestTotal, "guests=%d", guests)
			assert.Equal(t, 0, got.ExtraGuestCount)
		} else {
			assert.Equal(t, money.Cents(4000).Mul(guests-12), got.ExtraGuestTotal, "guests=%d", guests)
			assert.Equal(t, guests-12, got.ExtraGuestCount)
		}
	}
}

func TestCalculate_AddOnModes(t *testing.T) {
	got := Calculate(Input{
		BasePrice:  30000,
		BaseGuests: 10,
		Guests:     10,
		AddOns: []domain.ResolvedAddOn{
			{Code: "pizza", UnitPrice: 2500, Quantity: 2, Mode: domain.AddOnModeFlat},
			{Code: "goodie_bag", UnitPrice: 799, Quantity: 10, Mode: domain.AddOnModePerChild},
			{Code: "extra_hour", UnitPrice: 10000, Quantity: 1, Mode: domain.AddOnModeDuration},
		},
		CleaningFee:    5000,
		DepositPercent: 50,
	})

	assert.Equal(t, money.Cents(5000+7990+10000), got.AddOnTotal)
	assert.Equal(t, money.Cents(30000+22990), got.Subtotal)
	assert.Equal(t, got.Subtotal+5000, got.Total)
}

func TestCalculate_DepositPlusBalanceEqualsTotal(t *testing.T) {
	percents := []float64{0, 1, 10, 25, 33, 33.3, 50, 66.67, 99, 100}
	for base := money.Cents(0); base < 100000; base += 1337 {
		for _, pct := range percents {
			got := Calculate(Input{BasePrice: base, CleaningFee: 5001, DepositPercent: pct})
			assert.Equal(t, got.Total, got.DepositAmount+got.BalanceRemaining, "base=%s pct=%v", base, pct)
			assert.GreaterOrEqual(t, int64(got.BalanceRemaining), int64(0))
		}
	}
}

func TestCalculate_OddCentDeposit(t *testing.T) {
	// 50% от 449.01 = 224.505 -> 224.51, остаток 224.50
	got := Calculate(Input{BasePrice: 39901, CleaningFee: 5000, DepositPercent: 50})

	assert.Equal(t, money.Cents(22451), got.DepositAmount)
	assert.Equal(t, money.Cents(22450), got.BalanceRemaining)
}
