package recalculate_pricing

import (
	"context"

	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings/models"
)

type BookingService interface {
	RecalculatePricing(ctx context.Context, bookingID int64) (*models.PricingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
