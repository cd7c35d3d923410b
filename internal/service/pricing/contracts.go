package pricing

import (
	"context"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/addons"
)

// PackageRepository чтение пакетов праздника
type PackageRepository interface {
	GetPackageByID(ctx context.Context, id int64) (*domain.PartyPackage, error)
}

// AddOnCatalog источник актуального каталога дополнений
type AddOnCatalog interface {
	Catalog(ctx context.Context) (addons.Catalog, error)
}

// ConfigProvider действующие настройки ценообразования
type ConfigProvider interface {
	Current(ctx context.Context) (domain.PricingConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
