package estimate_booking

import (
	"context"

	"github.com/m04kA/SMC-PartyBookingService/internal/service/pricing"
)

// PricingService расчёт цены
type PricingService interface {
	Quote(ctx context.Context, req pricing.QuoteRequest) (*pricing.Quote, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
