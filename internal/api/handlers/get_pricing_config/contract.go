package get_pricing_config

import (
	"context"

	"github.com/m04kA/SMC-PartyBookingService/internal/service/config/models"
)

type ConfigService interface {
	Get(ctx context.Context) (*models.PricingConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
