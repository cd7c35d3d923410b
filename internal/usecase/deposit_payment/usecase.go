package deposit_payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/booking"
	guardianRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/guardian"
	paymentRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// UseCase двухфазная оплата депозита: создание платежа и подтверждение.
// Провайдер выбирается конфигурацией при старте, nil означает, что платежи не настроены
type UseCase struct {
	bookingRepo  BookingRepository
	guardianRepo GuardianRepository
	paymentRepo  PaymentRepository
	provider     Provider
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	guardianRepo GuardianRepository,
	paymentRepo PaymentRepository,
	provider Provider,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		guardianRepo: guardianRepo,
		paymentRepo:  paymentRepo,
		provider:     provider,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CreateIntent создаёт у провайдера платёж на сумму депозита
func (uc *UseCase) CreateIntent(ctx context.Context, req *CreateIntentRequest) (*CreateIntentResponse, error) {
	uc.logger.Info("CreateDepositIntent: guardian=%d, booking=%d", req.GuardianID, req.BookingID)

	// 1. Проверяем, что платежи настроены
	if uc.provider == nil {
		uc.logger.Error("CreateDepositIntent: payment provider is not configured")
		return nil, ErrPaymentsNotConfigured
	}

	// 2. Валидация входных данных
	if err := validateIDs(req.GuardianID, req.BookingID); err != nil {
		return nil, err
	}

	// 3. Получаем бронирование и проверяем владельца
	booking, err := uc.loadOwnedBooking(ctx, req.GuardianID, req.BookingID, "CreateDepositIntent")
	if err != nil {
		return nil, err
	}

	// 4. Проверяем состояние бронирования
	if booking.IsDepositPaid() {
		uc.logger.Warn("CreateDepositIntent: booking id=%d deposit already paid", booking.ID)
		return nil, ErrDepositAlreadyPaid
	}
	if booking.IsCancelled() {
		uc.logger.Warn("CreateDepositIntent: booking id=%d is cancelled", booking.ID)
		return nil, ErrBookingCancelled
	}
	if booking.DepositAmount <= 0 {
		uc.logger.Warn("CreateDepositIntent: booking id=%d has deposit %s", booking.ID, booking.DepositAmount)
		return nil, ErrInvalidDeposit
	}

	// 5. Создаём платёж у провайдера
	intent, err := uc.provider.CreateIntent(ctx, booking.DepositAmount, booking.Reference, map[string]string{
		"bookingId":  strconv.FormatInt(booking.ID, 10),
		"reference":  booking.Reference,
		"guardianId": strconv.FormatInt(req.GuardianID, 10),
		"purpose":    "booking_deposit",
	})
	if err != nil {
		uc.logger.Error("CreateDepositIntent: provider %s failed for booking id=%d: %v", uc.provider.Name(), booking.ID, err)
		return nil, err
	}

	// 6. Сохраняем платёж и привязываем его к бронированию
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking.PaymentIntentID = &intent.Handle
		if err := uc.bookingRepo.UpdatePayment(txCtx, booking); err != nil {
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		if err := uc.paymentRepo.Create(txCtx, &domain.DepositPayment{
			BookingID: booking.ID,
			Provider:  uc.provider.Name(),
			IntentID:  intent.Handle,
			Amount:    intent.Amount,
			Status:    domain.DepositPaymentPending,
		}); err != nil {
			return fmt.Errorf("%w: failed to record payment: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("CreateDepositIntent: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateDepositIntent: created intent %s for booking id=%d, amount=%s",
		intent.Handle, booking.ID, intent.Amount)

	return &CreateIntentResponse{
		BookingID:    booking.ID,
		IntentHandle: intent.Handle,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
		Provider:     uc.provider.Name(),
	}, nil
}

// ConfirmIntent подтверждает оплату депозита. Повторное подтверждение оплаченного
// бронирования возвращает текущее состояние без изменений
func (uc *UseCase) ConfirmIntent(ctx context.Context, req *ConfirmRequest) (*ConfirmResponse, error) {
	uc.logger.Info("ConfirmDeposit: guardian=%d, booking=%d, intent=%s", req.GuardianID, req.BookingID, req.IntentHandle)

	// 1. Проверяем, что платежи настроены
	if uc.provider == nil {
		uc.logger.Error("ConfirmDeposit: payment provider is not configured")
		return nil, ErrPaymentsNotConfigured
	}

	// 2. Валидация входных данных
	if err := validateConfirm(req); err != nil {
		return nil, err
	}

	// 3. Получаем бронирование и проверяем владельца
	booking, err := uc.loadOwnedBooking(ctx, req.GuardianID, req.BookingID, "ConfirmDeposit")
	if err != nil {
		return nil, err
	}

	// 4. Уже оплачено
	if booking.IsDepositPaid() {
		uc.logger.Info("ConfirmDeposit: booking id=%d already paid, returning current state", booking.ID)
		return toConfirmResponse(booking), nil
	}

	// 5. Отменённое бронирование не оплачивается
	if booking.IsCancelled() {
		uc.logger.Warn("ConfirmDeposit: booking id=%d is cancelled", booking.ID)
		return nil, ErrBookingCancelled
	}

	// 6. Платёж должен быть выписан для этого бронирования.
	// Проверяем по журналу платежей: у бронирования может быть несколько выписанных платежей
	if err := uc.checkIntentOwner(ctx, booking.ID, req.IntentHandle); err != nil {
		return nil, err
	}

	// 7. Спрашиваем провайдера
	settlement, err := uc.provider.Confirm(ctx, req.IntentHandle)
	if err != nil {
		uc.logger.Error("ConfirmDeposit: provider %s failed for intent %s: %v", uc.provider.Name(), req.IntentHandle, err)
		return nil, err
	}
	if !settlement.Succeeded {
		uc.logger.Warn("ConfirmDeposit: intent %s is not settled", req.IntentHandle)
		return nil, ErrPaymentNotSettled
	}
	if settlement.SettledAmount != booking.DepositAmount {
		uc.logger.Warn("ConfirmDeposit: intent %s settled %s, deposit is %s",
			req.IntentHandle, settlement.SettledAmount, booking.DepositAmount)
		return nil, fmt.Errorf("%w: settled %s, expected %s",
			ErrPaymentAmountMismatch, settlement.SettledAmount, booking.DepositAmount)
	}

	var result *domain.Booking
	paidNow := false

	// 8. Переводим бронирование в Confirmed/deposit_paid
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload booking: %w", ErrInternal, err)
		}
		if current.IsDepositPaid() {
			result = current
			return nil
		}
		if current.IsCancelled() {
			return ErrBookingCancelled
		}

		current.PaymentStatus = domain.PaymentDepositPaid
		current.Status = domain.StatusConfirmed
		current.PaymentIntentID = &req.IntentHandle
		current.BalanceRemaining = money.Max(current.Total-current.DepositAmount, money.Zero)

		if err := uc.bookingRepo.UpdatePayment(txCtx, current); err != nil {
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		if err := uc.paymentRepo.MarkCaptured(txCtx, req.IntentHandle, uc.timeProvider.Now()); err != nil {
			return fmt.Errorf("%w: failed to capture payment: %w", ErrInternal, err)
		}

		result = current
		paidNow = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingCancelled) {
			uc.logger.Warn("ConfirmDeposit: booking id=%d was cancelled before payment was applied", booking.ID)
			return nil, err
		}
		uc.logger.Error("ConfirmDeposit: %v", err)
		return nil, err
	}

	if paidNow {
		uc.logger.Info("ConfirmDeposit: booking id=%d confirmed, balance=%s", result.ID, result.BalanceRemaining)
		uc.publisher.Publish(domain.EventBookingDepositPaid, map[string]interface{}{
			"bookingId":        result.ID,
			"reference":        result.Reference,
			"depositAmount":    result.DepositAmount,
			"balanceRemaining": result.BalanceRemaining,
		})
	}

	return toConfirmResponse(result), nil
}

// loadOwnedBooking проверяет опекуна и доступ к бронированию.
// Гостевое бронирование доступно любому авторизованному опекуну
func (uc *UseCase) loadOwnedBooking(ctx context.Context, guardianID, bookingID int64, op string) (*domain.Booking, error) {
	guardian, err := uc.guardianRepo.GetByID(ctx, guardianID)
	if err != nil {
		if errors.Is(err, guardianRepo.ErrGuardianNotFound) {
			uc.logger.Warn("%s: guardian id=%d not found", op, guardianID)
			return nil, ErrGuardianNotFound
		}
		uc.logger.Error("%s: failed to get guardian id=%d: %v", op, guardianID, err)
		return nil, fmt.Errorf("%w: failed to get guardian: %v", ErrInternal, err)
	}
	if guardian.CustomerID == nil {
		uc.logger.Warn("%s: guardian id=%d has no customer record", op, guardianID)
		return nil, ErrGuardianNotFound
	}

	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("%s: booking id=%d not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("%s: failed to get booking id=%d: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.AccessibleBy(*guardian.CustomerID) {
		uc.logger.Warn("%s: booking id=%d does not belong to guardian id=%d", op, bookingID, guardianID)
		return nil, ErrBookingNotFound
	}

	return booking, nil
}

// checkIntentOwner проверяет, что платёж выписан для бронирования bookingID
func (uc *UseCase) checkIntentOwner(ctx context.Context, bookingID int64, intentHandle string) error {
	payment, err := uc.paymentRepo.GetByIntentID(ctx, intentHandle)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			uc.logger.Warn("ConfirmDeposit: intent %s is unknown", intentHandle)
			return ErrIntentMismatch
		}
		uc.logger.Error("ConfirmDeposit: failed to get payment for intent %s: %v", intentHandle, err)
		return fmt.Errorf("%w: failed to get payment: %w", ErrInternal, err)
	}
	if payment.BookingID != bookingID {
		uc.logger.Warn("ConfirmDeposit: intent %s belongs to booking id=%d, not id=%d",
			intentHandle, payment.BookingID, bookingID)
		return ErrIntentMismatch
	}
	return nil
}

func toConfirmResponse(b *domain.Booking) *ConfirmResponse {
	return &ConfirmResponse{
		BookingID:        b.ID,
		BalanceRemaining: b.BalanceRemaining,
		Status:           b.Status,
		PaymentStatus:    b.PaymentStatus,
	}
}
