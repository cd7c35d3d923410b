package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PartyBookingService/pkg/psqlbuilder"
)

// Repository журнал платежей по депозитам
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет созданный у провайдера платёж
func (r *Repository) Create(ctx context.Context, p *domain.DepositPayment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("deposit_payments").
		Columns("booking_id", "provider", "intent_id", "amount", "status").
		Values(p.BookingID, p.Provider, p.IntentID, p.Amount, p.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetByIntentID возвращает запись платежа по идентификатору провайдера
func (r *Repository) GetByIntentID(ctx context.Context, intentID string) (*domain.DepositPayment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "booking_id", "provider", "intent_id", "amount", "status", "created_at", "captured_at",
	).
		From("deposit_payments").
		Where(squirrel.Eq{"intent_id": intentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIntentID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		p          domain.DepositPayment
		capturedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.BookingID,
		&p.Provider,
		&p.IntentID,
		&p.Amount,
		&p.Status,
		&p.CreatedAt,
		&capturedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("%w: GetByIntentID - scan payment: %w", ErrExecQuery, err)
	}
	if capturedAt.Valid {
		p.CapturedAt = &capturedAt.Time
	}

	return &p, nil
}

// MarkCaptured переводит платёж в Captured
func (r *Repository) MarkCaptured(ctx context.Context, intentID string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("deposit_payments").
		Set("status", domain.DepositPaymentCaptured).
		Set("captured_at", at).
		Where(squirrel.Eq{"intent_id": intentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkCaptured - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkCaptured - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkCaptured - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}
