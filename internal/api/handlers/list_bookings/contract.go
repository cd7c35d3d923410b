package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListForGuardian(ctx context.Context, guardianID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
