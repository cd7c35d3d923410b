package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindActiveByLocationAndDate получает активные бронирования площадки на дату
	FindActiveByLocationAndDate(ctx context.Context, location string, date time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// ConflictDetector проверка пересечения окна с уже загруженными бронированиями
type ConflictDetector interface {
	Conflicts(window domain.TimeWindow, bookings []*domain.Booking, excludeID *int64) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
