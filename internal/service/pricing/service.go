package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/catalog"
)

// QuoteRequest параметры расчёта новой брони
type QuoteRequest struct {
	PackageID int64
	Guests    int
	AddOns    []domain.AddOnSelection
}

// Quote результат расчёта: пакет, снимок дополнений, длительность и цена
type Quote struct {
	Package              *domain.PartyPackage
	AddOns               []domain.ResolvedAddOn
	HasDurationExtension bool
	DurationMinutes      int
	Breakdown            domain.PricingBreakdown
}

// Service собирает входные данные калькулятора из пакета, каталога и настроек
type Service struct {
	packages         PackageRepository
	catalog          AddOnCatalog
	config           ConfigProvider
	extraHourMinutes int
	logger           Logger
}

// NewService создает новый экземпляр сервиса расчёта
func NewService(packages PackageRepository, catalog AddOnCatalog, config ConfigProvider, extraHourMinutes int, logger Logger) *Service {
	if extraHourMinutes <= 0 {
		extraHourMinutes = domain.DefaultExtraHourMinutes
	}
	return &Service{
		packages:         packages,
		catalog:          catalog,
		config:           config,
		extraHourMinutes: extraHourMinutes,
		logger:           logger,
	}
}

// Quote разбирает дополнения по текущему каталогу и считает цену
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	if req.Guests <= 0 {
		return nil, ErrInvalidGuests
	}

	pkg, err := s.getPackage(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}
	if !pkg.Active {
		s.logger.Warn("Quote: package id=%d is not active", pkg.ID)
		return nil, ErrPackageNotFound
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load catalog: %v", ErrInternal, err)
	}

	resolution, err := catalog.Resolve(req.AddOns)
	if err != nil {
		s.logger.Warn("Quote: %v", err)
		return nil, err
	}

	cfg, err := s.config.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load pricing config: %v", ErrInternal, err)
	}

	duration := pkg.Duration()
	if resolution.HasDurationExtension {
		duration += s.extraHourMinutes
	}

	return &Quote{
		Package:              pkg,
		AddOns:               resolution.AddOns,
		HasDurationExtension: resolution.HasDurationExtension,
		DurationMinutes:      duration,
		Breakdown: Calculate(Input{
			BasePrice:      pkg.BasePrice,
			BaseGuests:     pkg.BaseGuests,
			Guests:         req.Guests,
			AddOns:         resolution.AddOns,
			ExtraGuestFee:  catalog.ExtraGuestFee(cfg.ExtraGuestFeeSource, cfg.ExtraGuestFallbackFee),
			CleaningFee:    cfg.CleaningFee,
			DepositPercent: cfg.DepositPercent,
		}),
	}, nil
}

// Reprice пересчитывает существующую бронь: снимок дополнений остаётся как есть,
// пакет, плата за гостя и настройки берутся текущие. Снятый с продажи пакет допустим
func (s *Service) Reprice(ctx context.Context, booking *domain.Booking) (domain.PricingBreakdown, error) {
	pkg, err := s.getPackage(ctx, booking.PackageID)
	if err != nil {
		return domain.PricingBreakdown{}, err
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return domain.PricingBreakdown{}, fmt.Errorf("%w: load catalog: %v", ErrInternal, err)
	}

	cfg, err := s.config.Current(ctx)
	if err != nil {
		return domain.PricingBreakdown{}, fmt.Errorf("%w: load pricing config: %v", ErrInternal, err)
	}

	return Calculate(Input{
		BasePrice:      pkg.BasePrice,
		BaseGuests:     pkg.BaseGuests,
		Guests:         booking.GuestCount,
		AddOns:         booking.AddOns,
		ExtraGuestFee:  catalog.ExtraGuestFee(cfg.ExtraGuestFeeSource, cfg.ExtraGuestFallbackFee),
		CleaningFee:    cfg.CleaningFee,
		DepositPercent: cfg.DepositPercent,
	}), nil
}

// BaseDuration длительность пакета без продления
func (s *Service) BaseDuration(ctx context.Context, packageID int64) (int, error) {
	pkg, err := s.getPackage(ctx, packageID)
	if err != nil {
		return 0, err
	}
	return pkg.Duration(), nil
}

// ExtraHourMinutes шаг продления праздника
func (s *Service) ExtraHourMinutes() int {
	return s.extraHourMinutes
}

func (s *Service) getPackage(ctx context.Context, id int64) (*domain.PartyPackage, error) {
	pkg, err := s.packages.GetPackageByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			s.logger.Warn("getPackage: package id=%d not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("getPackage: failed to get package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: get package: %v", ErrInternal, err)
	}
	return pkg, nil
}
