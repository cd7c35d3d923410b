package addons

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

// Resolver читает каталог дополнений при каждом вызове
type Resolver struct {
	repo   AddOnRepository
	logger Logger
}

// NewResolver создает новый экземпляр резолвера дополнений
func NewResolver(repo AddOnRepository, logger Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		logger: logger,
	}
}

// Catalog загружает актуальный каталог активных дополнений
func (r *Resolver) Catalog(ctx context.Context) (Catalog, error) {
	defs, err := r.repo.ListActive(ctx)
	if err != nil {
		r.logger.Error("Catalog: failed to list add-ons: %v", err)
		return nil, fmt.Errorf("%w: list add-ons: %v", ErrInternal, err)
	}
	return NewCatalog(defs), nil
}

// Resolve загружает каталог и разбирает запрошенные дополнения
func (r *Resolver) Resolve(ctx context.Context, selections []domain.AddOnSelection) (*Resolution, error) {
	catalog, err := r.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	res, err := catalog.Resolve(selections)
	if err != nil {
		r.logger.Warn("Resolve: %v", err)
		return nil, err
	}
	return res, nil
}
