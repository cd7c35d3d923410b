package estimate_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/pricing"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

type fakePricing struct {
	got pricing.QuoteRequest
	err error
}

func (f *fakePricing) Quote(_ context.Context, req pricing.QuoteRequest) (*pricing.Quote, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &pricing.Quote{
		Package:         &domain.PartyPackage{ID: req.PackageID},
		DurationMinutes: 120,
		Breakdown: pricing.Calculate(pricing.Input{
			BasePrice:      39900,
			BaseGuests:     12,
			Guests:         req.Guests,
			ExtraGuestFee:  4000,
			CleaningFee:    5000,
			DepositPercent: 50,
		}),
	}, nil
}

func TestExecute_ReturnsBreakdownInUSD(t *testing.T) {
	p := &fakePricing{}
	uc := NewUseCase(p, 60, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{PackageID: 3, Guests: 14})
	require.NoError(t, err)

	assert.Equal(t, Currency, resp.Currency)
	assert.Equal(t, 2, resp.ExtraGuestCount)
	assert.Equal(t, money.Cents(8000), resp.ExtraGuestTotal)
	assert.Equal(t, money.Cents(39900+8000+5000), resp.Total)
	assert.Equal(t, resp.Total, resp.DepositAmount+resp.BalanceRemaining)
	assert.Equal(t, int64(3), p.got.PackageID)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakePricing{}, 60, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{PackageID: 0, Guests: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PackageID: 1, Guests: 61})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PropagatesQuoteErrors(t *testing.T) {
	uc := NewUseCase(&fakePricing{err: pricing.ErrPackageNotFound}, 60, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{PackageID: 1, Guests: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
