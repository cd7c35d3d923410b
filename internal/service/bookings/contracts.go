package bookings

import (
	"context"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Booking, error)
	ListAll(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdatePricing(ctx context.Context, booking *domain.Booking) error
}

// GuardianRepository интерфейс репозитория опекунов
type GuardianRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guardian, error)
}

// Repricer пересчёт цены существующего бронирования
type Repricer interface {
	Reprice(ctx context.Context, booking *domain.Booking) (domain.PricingBreakdown, error)
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	Publish(eventType string, payload map[string]interface{})
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
