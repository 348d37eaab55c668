package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sporzo/turf-booking-service/internal/domain"
	"github.com/sporzo/turf-booking-service/pkg/dbmetrics"
	"github.com/sporzo/turf-booking-service/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

var bookingColumns = []string{
	"booking_id",
	"user_id",
	"turf_id",
	"field_config_id",
	"booking_date",
	"booking_type",
	"slot_hours",
	"flex_start_time",
	"flex_end_time",
	"amount",
	"payment_status",
	"payment_ref",
	"customer_name",
	"customer_email",
	"customer_phone",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись бронирования
// Если в контексте передана активная транзакция, использует её -
// коммит бронирования всегда выполняется внутри сериализуемой транзакции,
// чтобы проверка занятости слотов и вставка были атомарны
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_id",
			"user_id",
			"turf_id",
			"field_config_id",
			"booking_date",
			"booking_type",
			"slot_hours",
			"flex_start_time",
			"flex_end_time",
			"amount",
			"payment_status",
			"payment_ref",
			"customer_name",
			"customer_email",
			"customer_phone",
		).
		Values(
			b.BookingID,
			b.UserID,
			b.TurfID,
			b.FieldConfigID,
			b.Date,
			b.Type,
			hoursToArray(b.SlotHours),
			b.FlexStartTime,
			b.FlexEndTime,
			b.Amount,
			b.PaymentStatus,
			b.PaymentRef,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDuplicateBookingID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByBookingID получает бронирование по его внешнему ID
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetActiveByTurfAndDate получает все занимающие слоты бронирования площадки на дату
// Внутри транзакции добавляет FOR UPDATE - выборка блокирует конкурирующие
// коммиты на ту же площадку и дату до завершения транзакции
func (r *Repository) GetActiveByTurfAndDate(ctx context.Context, turfID int64, date string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	occupying := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		occupying[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"turf_id": turfID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"payment_status": occupying}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTurfAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTurfAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByUserID получает историю бронирований пользователя
// Опционально фильтрует по статусу оплаты
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.PaymentStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByTurfWithFilter получает бронирования площадки с гибкой фильтрацией
// по периоду и статусу; по умолчанию неактивные записи исключаются
func (r *Repository) GetByTurfWithFilter(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"turf_id": filter.TurfID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": filter.EndDate.Format(domain.DateFormat)})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"payment_status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date DESC, created_at DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус оплаты бронирования
func (r *Repository) UpdateStatus(ctx context.Context, bookingID string, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel помечает бронирование отменённым с указанием причины
// Часы записи немедленно освобождаются: выборки занятости фильтруют по статусу
func (r *Repository) Cancel(ctx context.Context, bookingID string, status domain.PaymentStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// hoursToArray конвертирует часы слотов в массив для pq
func hoursToArray(hours []int) pq.Int64Array {
	arr := make(pq.Int64Array, len(hours))
	for i, h := range hours {
		arr[i] = int64(h)
	}
	return arr
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в доменную модель
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var slotHours pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.BookingID,
		&b.UserID,
		&b.TurfID,
		&b.FieldConfigID,
		&b.Date,
		&b.Type,
		&slotHours,
		&b.FlexStartTime,
		&b.FlexEndTime,
		&b.Amount,
		&b.PaymentStatus,
		&b.PaymentRef,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.SlotHours = make([]int, len(slotHours))
	for i, h := range slotHours {
		b.SlotHours[i] = int(h)
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
