package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	guardianRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/guardian"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/pricing"
	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

// Settings параметры площадок из конфигурации
type Settings struct {
	Locations []string       // Поддерживаемые площадки
	MaxGuests int            // Максимум гостей на празднике
	Timezone  *time.Location // Часовой пояс площадок
}

// UseCase use case для создания бронирования праздника
type UseCase struct {
	bookingRepo  BookingRepository
	guardianRepo GuardianRepository
	pricing      PricingService
	availability AvailabilityChecker
	publisher    EventPublisher
	txManager    TransactionManager
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	guardianRepo GuardianRepository,
	pricing PricingService,
	availability AvailabilityChecker,
	publisher EventPublisher,
	txManager TransactionManager,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.Timezone == nil {
		settings.Timezone = time.UTC
	}
	if settings.MaxGuests <= 0 {
		settings.MaxGuests = domain.DefaultMaxGuests
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		guardianRepo: guardianRepo,
		pricing:      pricing,
		availability: availability,
		publisher:    publisher,
		txManager:    txManager,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// draft данные будущей брони после проверок владельца
type draft struct {
	details    *Details
	customerID *int64
	childIDs   []int64
	notes      *string
	guestEmail string
}

// Execute создаёт бронирование для авторизованного опекуна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guardian=%d, package=%d, location=%s, date=%s, time=%s, guests=%d",
		req.GuardianID, req.PackageID, req.Location, req.EventDate.Format(domain.DateFormat), req.StartTime, req.Guests)

	// 1. Валидация входных данных
	if req.GuardianID <= 0 {
		return nil, fmt.Errorf("%w: guardianId must be positive", ErrInvalidInput)
	}
	if err := validateDetails(&req.Details, uc.settings.MaxGuests); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем опекуна и его запись клиента
	guardian, err := uc.guardianRepo.GetByID(ctx, req.GuardianID)
	if err != nil {
		if errors.Is(err, guardianRepo.ErrGuardianNotFound) {
			uc.logger.Warn("CreateBooking: guardian id=%d not found", req.GuardianID)
			return nil, ErrGuardianNotFound
		}
		uc.logger.Error("CreateBooking: failed to get guardian id=%d: %v", req.GuardianID, err)
		return nil, fmt.Errorf("%w: failed to get guardian: %w", ErrInternal, err)
	}
	if guardian.CustomerID == nil {
		uc.logger.Warn("CreateBooking: guardian id=%d has no customer record", req.GuardianID)
		return nil, ErrCustomerNotFound
	}

	// 3. Проверяем площадку
	if err := validateLocation(req.Location, uc.settings.Locations); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 4. Проверяем, что дети принадлежат клиенту
	owned, err := uc.guardianRepo.ListChildIDs(ctx, *guardian.CustomerID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list children for customer id=%d: %v", *guardian.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to list children: %w", ErrInternal, err)
	}
	if err := validateChildren(req.ChildIDs, owned); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	return uc.create(ctx, &draft{
		details:    &req.Details,
		customerID: guardian.CustomerID,
		childIDs:   req.ChildIDs,
		notes:      req.Notes,
	})
}

// ExecuteGuest создаёт бронирование без аккаунта. Контакты гостя сохраняются в заметках
func (uc *UseCase) ExecuteGuest(ctx context.Context, req *GuestRequest) (*Response, error) {
	uc.logger.Info("CreateGuestBooking: email=%s, package=%d, location=%s, date=%s, time=%s, guests=%d",
		req.Contact.Email, req.PackageID, req.Location, req.EventDate.Format(domain.DateFormat), req.StartTime, req.Guests)

	// 1. Валидация входных данных
	if err := validateDetails(&req.Details, uc.settings.MaxGuests); err != nil {
		uc.logger.Warn("CreateGuestBooking: validation failed: %v", err)
		return nil, err
	}
	if err := validateContact(&req.Contact); err != nil {
		uc.logger.Warn("CreateGuestBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем площадку
	if err := validateLocation(req.Location, uc.settings.Locations); err != nil {
		uc.logger.Warn("CreateGuestBooking: %v", err)
		return nil, err
	}

	return uc.create(ctx, &draft{
		details:    &req.Details,
		childIDs:   []int64{},
		notes:      guestNotes(&req.Contact, req.Notes),
		guestEmail: req.Contact.Email,
	})
}

func (uc *UseCase) create(ctx context.Context, d *draft) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Дата праздника не в прошлом
	if err := validateEventDate(d.details.EventDate, now, uc.settings.Timezone); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 2. Пакет, дополнения и цена
	quote, err := uc.pricing.Quote(ctx, pricing.QuoteRequest{
		PackageID: d.details.PackageID,
		Guests:    d.details.Guests,
		AddOns:    d.details.AddOns,
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: quote failed: %v", err)
		return nil, err
	}

	// 3. Окно праздника
	endTime, err := d.details.StartTime.AddMinutes(quote.DurationMinutes)
	if err != nil {
		if errors.Is(err, types.ErrTimeOverflow) {
			return nil, fmt.Errorf("%w: party must end before midnight", ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	window, err := domain.NewTimeWindow(d.details.EventDate, d.details.StartTime, endTime, uc.settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Booking

	// 4. Проверка и запись в одной сериализуемой транзакции под блокировкой (location, date)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем площадку на дату
		if err := uc.bookingRepo.LockLocationDate(txCtx, d.details.Location, d.details.EventDate); err != nil {
			uc.logger.Error("CreateBooking: failed to lock %s on %s: %v",
				d.details.Location, d.details.EventDate.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to lock location: %w", ErrInternal, err)
		}

		// 4.2. Повторно проверяем доступность под блокировкой
		available, err := uc.availability.IsAvailable(txCtx, d.details.Location, window, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("CreateBooking: slot %s %s-%s is not available",
				d.details.Location, d.details.StartTime, endTime)
			return ErrSlotUnavailable
		}

		// 4.3. Создаём бронирование
		booking := &domain.Booking{
			Reference:     domain.NewReference(now.In(uc.settings.Timezone)),
			PackageID:     quote.Package.ID,
			CustomerID:    d.customerID,
			ChildIDs:      d.childIDs,
			Location:      d.details.Location,
			EventDate:     d.details.EventDate,
			StartTime:     d.details.StartTime,
			EndTime:       endTime,
			GuestCount:    d.details.Guests,
			AddOns:        quote.AddOns,
			PaymentStatus: domain.PaymentAwaitingDeposit,
			Status:        domain.StatusPending,
			Notes:         d.notes,
		}
		booking.ApplyPricing(quote.Breakdown)

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, reference=%s", result.ID, result.Reference)

	// 5. Публикуем событие
	payload := map[string]interface{}{
		"bookingId":     result.ID,
		"reference":     result.Reference,
		"location":      result.Location,
		"eventDate":     result.EventDate.Format(domain.DateFormat),
		"startTime":     result.StartTime.String(),
		"depositAmount": result.DepositAmount,
	}
	if result.IsGuest() {
		payload["isGuestBooking"] = true
		payload["guestEmail"] = d.guestEmail
	}
	uc.publisher.Publish(domain.EventBookingCreated, payload)

	return &Response{
		BookingID:        result.ID,
		Reference:        result.Reference,
		Status:           result.Status,
		PaymentStatus:    result.PaymentStatus,
		StartTime:        result.StartTime,
		EndTime:          result.EndTime,
		Subtotal:         result.Subtotal,
		CleaningFee:      result.CleaningFee,
		Total:            result.Total,
		DepositAmount:    result.DepositAmount,
		BalanceRemaining: result.BalanceRemaining,
	}, nil
}
