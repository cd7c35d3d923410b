package check_availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

// UseCase проверяет, свободно ли базовое окно праздника
type UseCase struct {
	checker         AvailabilityChecker
	durationMinutes int
	timezone        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(checker AvailabilityChecker, durationMinutes int, timezone *time.Location, logger Logger) *UseCase {
	if durationMinutes <= 0 {
		durationMinutes = domain.DefaultPartyDurationMinutes
	}
	if timezone == nil {
		timezone = time.UTC
	}
	return &UseCase{
		checker:         checker,
		durationMinutes: durationMinutes,
		timezone:        timezone,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: guardian=%d, location=%s, date=%s, time=%s",
		req.GuardianID, req.Location, req.EventDate.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.Location) == "" {
		return nil, fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if req.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: eventDate is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	// 2. Базовое окно без продления
	end, err := req.StartTime.AddMinutes(uc.durationMinutes)
	if err != nil {
		return &Response{Available: false}, nil
	}
	window, err := domain.NewTimeWindow(req.EventDate, req.StartTime, end, uc.timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Проверка
	available, err := uc.checker.IsAvailable(ctx, req.Location, window, req.IgnoreBookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{Available: available}, nil
}
