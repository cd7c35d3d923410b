package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

// BookingRepository источник активных бронирований площадки
type BookingRepository interface {
	FindActiveByLocationAndDate(ctx context.Context, location string, date time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
