package deposit_payment

import (
	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// CreateIntentRequest запрос на создание платежа по депозиту
type CreateIntentRequest struct {
	GuardianID int64
	BookingID  int64
}

// CreateIntentResponse созданный у провайдера платёж
type CreateIntentResponse struct {
	BookingID    int64
	IntentHandle string
	Amount       money.Cents
	Currency     string
	Provider     string
}

// ConfirmRequest запрос на подтверждение оплаты депозита
type ConfirmRequest struct {
	GuardianID   int64
	BookingID    int64
	IntentHandle string
}

// ConfirmResponse состояние бронирования после подтверждения
type ConfirmResponse struct {
	BookingID        int64
	BalanceRemaining money.Cents
	Status           domain.BookingStatus
	PaymentStatus    domain.PaymentStatus
}
