package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/pricing"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	LockLocationDate(ctx context.Context, location string, date time.Time) error
}

// GuardianRepository интерфейс репозитория опекунов
type GuardianRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guardian, error)
	ListChildIDs(ctx context.Context, customerID int64) ([]int64, error)
}

// PricingService расчёт цены и длительности
type PricingService interface {
	Quote(ctx context.Context, req pricing.QuoteRequest) (*pricing.Quote, error)
}

// AvailabilityChecker проверка свободного окна на площадке
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, location string, window domain.TimeWindow, excludeID *int64) (bool, error)
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	Publish(eventType string, payload map[string]interface{})
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
