package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PartyBookingService/pkg/psqlbuilder"
)

// Repository справочные данные: пакеты праздников и дополнения
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPackageByID получает пакет праздника по ID
func (r *Repository) GetPackageByID(ctx context.Context, id int64) (*domain.PartyPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "base_price", "base_guests", "duration_minutes", "active").
		From("party_packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPackageByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.PartyPackage
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.BasePrice,
		&p.BaseGuests,
		&p.DurationMinutes,
		&p.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPackageByID - scan package: %w", ErrScanRow, err)
	}

	return &p, nil
}

// ListActive возвращает активные дополнения в порядке отображения
func (r *Repository) ListActive(ctx context.Context) ([]*domain.AddOnDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "code", "label", "price", "price_type", "active").
		From("party_add_ons").
		Where(squirrel.Eq{"active": true}).
		OrderBy("sort_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	defs := make([]*domain.AddOnDefinition, 0)
	for rows.Next() {
		var d domain.AddOnDefinition
		if err := rows.Scan(&d.ID, &d.Code, &d.Label, &d.Price, &d.Mode, &d.Active); err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan add-on: %w", ErrScanRow, err)
		}
		defs = append(defs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %w", ErrScanRow, err)
	}

	return defs, nil
}
