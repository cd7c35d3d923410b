package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/now"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

// UseCase use case для получения сетки слотов площадки на дату
type UseCase struct {
	bookingRepo BookingRepository
	detector    ConflictDetector
	settings    Settings
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	detector ConflictDetector,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.Timezone == nil {
		settings.Timezone = time.UTC
	}
	if settings.DurationMinutes <= 0 {
		settings.DurationMinutes = domain.DefaultPartyDurationMinutes
	}
	if settings.ExtraHourMinutes <= 0 {
		settings.ExtraHourMinutes = domain.DefaultExtraHourMinutes
	}
	return &UseCase{
		bookingRepo: bookingRepo,
		detector:    detector,
		settings:    settings,
		logger:      logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: location=%s, date=%s", req.Location, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.settings.Locations); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату к началу дня на площадке
	y, m, d := req.Date.Date()
	date := now.With(time.Date(y, m, d, 12, 0, 0, 0, uc.settings.Timezone)).BeginningOfDay()

	// 3. Получаем активные бронирования площадки на эту дату
	bookings, err := uc.bookingRepo.FindActiveByLocationAndDate(ctx, req.Location, date, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Размечаем сетку
	slots, err := buildSlots(
		date,
		uc.settings.DailySlots,
		uc.settings.DurationMinutes,
		uc.settings.ExtraHourMinutes,
		uc.settings.Timezone,
		bookings,
		uc.detector,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for location=%s, date=%s, existing bookings=%d",
		len(slots), req.Location, date.Format(domain.DateFormat), len(bookings))

	return &Response{
		Date:     date,
		Location: req.Location,
		Slots:    slots,
	}, nil
}
