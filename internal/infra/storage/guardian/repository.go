package guardian

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

// Repository опекуны и их дети
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория опекунов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает опекуна по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Guardian, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "customer_id", "email", "first_name", "last_name").
		From("guardians").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var g domain.Guardian
	err = executor.QueryRowContext(ctx, query, args...).Scan(&g.ID, &g.CustomerID, &g.Email, &g.FirstName, &g.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGuardianNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guardian: %w", ErrScanRow, err)
	}

	return &g, nil
}

// ListChildIDs возвращает ID детей клиента
func (r *Repository) ListChildIDs(ctx context.Context, customerID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("children").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListChildIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListChildIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListChildIDs - scan id: %w", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListChildIDs - rows error: %w", ErrScanRow, err)
	}

	return ids, nil
}
