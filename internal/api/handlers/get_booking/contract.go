package get_booking

import (
	"context"

	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetForGuardian(ctx context.Context, bookingID, guardianID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
