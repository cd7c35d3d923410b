package addons

import (
	"context"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

// AddOnRepository источник каталога дополнений
type AddOnRepository interface {
	ListActive(ctx context.Context) ([]*domain.AddOnDefinition, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
