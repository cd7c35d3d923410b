package payments

import "github.com/m04kA/SMC-PartyBookingService/internal/domain"

var (
	// ErrProviderFailure провайдер вернул ошибку или неожиданный ответ
	ErrProviderFailure = domain.NewError(domain.ErrPayment, "payments: provider failure")

	// ErrInvalidAmount сумма платежа должна быть положительной
	ErrInvalidAmount = domain.NewError(domain.ErrValidation, "payments: amount must be positive")
)
