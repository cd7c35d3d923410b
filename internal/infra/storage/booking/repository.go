package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PartyBookingService/pkg/psqlbuilder"
)

const table = "party_bookings"

var columns = []string{
	"id",
	"reference",
	"package_id",
	"customer_id",
	"child_ids",
	"location",
	"event_date",
	"start_time",
	"end_time",
	"guests",
	"add_ons",
	"subtotal",
	"cleaning_fee",
	"total",
	"deposit_amount",
	"balance_remaining",
	"payment_status",
	"payment_intent_id",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями праздников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование и заполняет ID и метки времени.
// Если в контексте есть транзакция, запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	addOns, err := encodeAddOns(booking.AddOns)
	if err != nil {
		return nil, err
	}

	childIDs := booking.ChildIDs
	if childIDs == nil {
		childIDs = []int64{}
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"reference",
			"package_id",
			"customer_id",
			"child_ids",
			"location",
			"event_date",
			"start_time",
			"end_time",
			"guests",
			"add_ons",
			"subtotal",
			"cleaning_fee",
			"total",
			"deposit_amount",
			"balance_remaining",
			"payment_status",
			"status",
			"notes",
		).
		Values(
			booking.Reference,
			booking.PackageID,
			booking.CustomerID,
			pq.Array(childIDs),
			booking.Location,
			booking.EventDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.GuestCount,
			string(addOns),
			booking.Subtotal,
			booking.CleaningFee,
			booking.Total,
			booking.DepositAmount,
			booking.BalanceRemaining,
			booking.PaymentStatus,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID. В транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - %w", ErrScanRow, err)
	}

	return booking, nil
}

// FindActiveByLocationAndDate возвращает неотменённые бронирования площадки на дату.
// В транзакции строки блокируются (FOR UPDATE)
func (r *Repository) FindActiveByLocationAndDate(ctx context.Context, location string, date time.Time, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"location": location}).
		Where(squirrel.Eq{"event_date": date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC")

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByLocationAndDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, query, args, "FindActiveByLocationAndDate")
}

// LockLocationDate берёт транзакционную advisory-блокировку на пару (location, date).
// Блокировка снимается при завершении транзакции
func (r *Repository) LockLocationDate(ctx context.Context, location string, date time.Time) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	key := location + "|" + date.Format(domain.DateFormat)
	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("%w: LockLocationDate - %w", ErrExecQuery, err)
	}

	return nil
}

// ListByCustomer возвращает бронирования клиента, новые первыми
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("event_date DESC", "start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, query, args, "ListByCustomer")
}

// ListAll возвращает все бронирования с опциональной фильтрацией
func (r *Repository) ListAll(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("event_date DESC", "start_time DESC")

	if filter.Location != nil {
		builder = builder.Where(squirrel.Eq{"location": *filter.Location})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"event_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, query, args, "ListAll")
}

// UpdateStatus перезаписывает статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.update(ctx, id, map[string]interface{}{"status": status}, "UpdateStatus")
}

// UpdatePayment сохраняет платёжное состояние бронирования
func (r *Repository) UpdatePayment(ctx context.Context, booking *domain.Booking) error {
	return r.update(ctx, booking.ID, map[string]interface{}{
		"payment_status":    booking.PaymentStatus,
		"payment_intent_id": booking.PaymentIntentID,
		"status":            booking.Status,
		"balance_remaining": booking.BalanceRemaining,
	}, "UpdatePayment")
}

// UpdatePricing сохраняет пересчитанные суммы бронирования
func (r *Repository) UpdatePricing(ctx context.Context, booking *domain.Booking) error {
	return r.update(ctx, booking.ID, map[string]interface{}{
		"subtotal":          booking.Subtotal,
		"cleaning_fee":      booking.CleaningFee,
		"total":             booking.Total,
		"deposit_amount":    booking.DepositAmount,
		"balance_remaining": booking.BalanceRemaining,
	}, "UpdatePricing")
}

func (r *Repository) update(ctx context.Context, id int64, values map[string]interface{}, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		SetMap(values).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) ([]*domain.Booking, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - %w", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking читает строку в порядке columns
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b        domain.Booking
		childIDs pq.Int64Array
		addOns   []byte
	)

	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.PackageID,
		&b.CustomerID,
		&childIDs,
		&b.Location,
		&b.EventDate,
		&b.StartTime,
		&b.EndTime,
		&b.GuestCount,
		&addOns,
		&b.Subtotal,
		&b.CleaningFee,
		&b.Total,
		&b.DepositAmount,
		&b.BalanceRemaining,
		&b.PaymentStatus,
		&b.PaymentIntentID,
		&b.Status,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.ChildIDs = []int64(childIDs)
	if len(addOns) > 0 {
		if err := json.Unmarshal(addOns, &b.AddOns); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncodeAddOns, err)
		}
	}

	return &b, nil
}

func encodeAddOns(addOns []domain.ResolvedAddOn) ([]byte, error) {
	if addOns == nil {
		addOns = []domain.ResolvedAddOn{}
	}
	data, err := json.Marshal(addOns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeAddOns, err)
	}
	return data, nil
}
