package estimate_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/pricing"
)

// UseCase оценка стоимости без проверки доступности и без сохранения
type UseCase struct {
	pricing   PricingService
	maxGuests int
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricing PricingService, maxGuests int, logger Logger) *UseCase {
	if maxGuests <= 0 {
		maxGuests = domain.DefaultMaxGuests
	}
	return &UseCase{
		pricing:   pricing,
		maxGuests: maxGuests,
		logger:    logger,
	}
}

// Execute выполняет расчёт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EstimateBooking: package=%d, guests=%d, addOns=%d", req.PackageID, req.Guests, len(req.AddOns))

	if req.PackageID <= 0 {
		return nil, fmt.Errorf("%w: packageId must be positive", ErrInvalidInput)
	}
	if req.Guests <= 0 || req.Guests > uc.maxGuests {
		return nil, fmt.Errorf("%w: guests must be within 1..%d", ErrInvalidInput, uc.maxGuests)
	}

	quote, err := uc.pricing.Quote(ctx, pricing.QuoteRequest{
		PackageID: req.PackageID,
		Guests:    req.Guests,
		AddOns:    req.AddOns,
	})
	if err != nil {
		uc.logger.Warn("EstimateBooking: %v", err)
		return nil, err
	}

	b := quote.Breakdown
	return &Response{
		BasePrice:        b.BasePrice,
		ExtraGuestCount:  b.ExtraGuestCount,
		ExtraGuestFee:    b.ExtraGuestFee,
		ExtraGuestTotal:  b.ExtraGuestTotal,
		AddOns:           quote.AddOns,
		AddOnTotal:       b.AddOnTotal,
		Subtotal:         b.Subtotal,
		CleaningFee:      b.CleaningFee,
		Total:            b.Total,
		DepositAmount:    b.DepositAmount,
		BalanceRemaining: b.BalanceRemaining,
		DurationMinutes:  quote.DurationMinutes,
		Currency:         Currency,
	}, nil
}
