package check_availability

import (
	"context"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

// AvailabilityChecker проверка свободного окна на площадке
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, location string, window domain.TimeWindow, excludeID *int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
