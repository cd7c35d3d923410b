package deposit_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/internal/integrations/payments"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdatePayment(ctx context.Context, booking *domain.Booking) error
}

// GuardianRepository интерфейс репозитория опекунов
type GuardianRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guardian, error)
}

// PaymentRepository журнал платежей по депозитам
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.DepositPayment) error
	GetByIntentID(ctx context.Context, intentID string) (*domain.DepositPayment, error)
	MarkCaptured(ctx context.Context, intentID string, at time.Time) error
}

// Provider двухфазный платёж у провайдера. Реальный и mock провайдеры взаимозаменяемы
type Provider interface {
	Name() string
	CreateIntent(ctx context.Context, amount money.Cents, receipt string, metadata map[string]string) (*payments.Intent, error)
	Confirm(ctx context.Context, handle string) (*payments.Settlement, error)
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	Publish(eventType string, payload map[string]interface{})
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
