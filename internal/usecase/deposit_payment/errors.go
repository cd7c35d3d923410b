package deposit_payment

import (
	"errors"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

var (
	// ErrPaymentsNotConfigured возвращается, когда провайдер платежей не настроен
	ErrPaymentsNotConfigured = domain.NewError(domain.ErrConfiguration, "deposit_payment: payments are not configured")

	// ErrGuardianNotFound возвращается, когда опекун или его запись клиента не найдены
	ErrGuardianNotFound = domain.NewError(domain.ErrNotFound, "deposit_payment: guardian not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено или принадлежит другому клиенту
	ErrBookingNotFound = domain.NewError(domain.ErrNotFound, "deposit_payment: booking not found")

	// ErrDepositAlreadyPaid возвращается при попытке оплатить уже оплаченный депозит
	ErrDepositAlreadyPaid = domain.NewError(domain.ErrConflict, "deposit_payment: deposit already paid")

	// ErrBookingCancelled возвращается при попытке оплатить отменённое бронирование
	ErrBookingCancelled = domain.NewError(domain.ErrConflict, "deposit_payment: booking is cancelled")

	// ErrInvalidDeposit возвращается, когда сумма депозита не положительна
	ErrInvalidDeposit = domain.NewError(domain.ErrValidation, "deposit_payment: deposit amount is invalid")

	// ErrIntentMismatch возвращается, когда платёж выписан не для этого бронирования
	ErrIntentMismatch = domain.NewError(domain.ErrValidation, "deposit_payment: payment does not belong to this booking")

	// ErrPaymentNotSettled возвращается, когда провайдер не подтвердил оплату
	ErrPaymentNotSettled = domain.NewError(domain.ErrPayment, "deposit_payment: payment is not complete")

	// ErrPaymentAmountMismatch возвращается, когда оплаченная сумма не совпадает с депозитом
	ErrPaymentAmountMismatch = domain.NewError(domain.ErrPayment, "deposit_payment: payment amount does not match deposit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "deposit_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("deposit_payment: internal error")
)
