package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const pgUniqueViolation = "23505"

// activeSlotIndex частичный уникальный индекс по кортежу слота
// для бронирований со статусом != cancelled (см. migrations/001_init.sql)
const activeSlotIndex = "bookings_active_slot_key"

// bookingColumns полный набор колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"user_id",
	"turf_id",
	"booking_date",
	"start_time",
	"end_time",
	"player_count",
	"total_price",
	"status",
	"payment_status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий журнала бронирований (Reservation Ledger)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new ledger entry. The compound-uniqueness of the active
// slot tuple is enforced by a partial unique index, not by this method: a
// violation comes back as ErrDuplicateBooking and the caller decides what
// the duplicate means.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"turf_id",
			"booking_date",
			"start_time",
			"end_time",
			"player_count",
			"total_price",
			"status",
			"payment_status",
		).
		Values(
			booking.UserID,
			booking.TurfID,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.PlayerCount,
			booking.TotalPrice,
			booking.Status,
			booking.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// FindActiveBooking получает активное (не отменённое) бронирование по
// кортежу слота. Возвращает ErrBookingNotFound, если такого нет.
func (r *Repository) FindActiveBooking(ctx context.Context, key domain.SlotKey) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"turf_id":      key.TurfID,
			"booking_date": key.Date,
			"start_time":   key.StartTime,
			"end_time":     key.EndTime,
		}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBooking - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "FindActiveBooking")
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
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

	return r.scanBookings(rows)
}

// GetByTurfWithFilter получает бронирования площадки с фильтрацией
// по дате, статусу и включению отменённых
func (r *Repository) GetByTurfWithFilter(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"turf_id": filter.TurfID})

	// Фильтрация по дате (дата всегда хранится нормализованной к полуночи UTC)
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// FindUnsynced находит активные бронирования, слот которых не помечен
// занятым (или вовсе отсутствует в календаре). Это рабочий материал для
// внешней сверки после SlotSyncFailure.
func (r *Repository) FindUnsynced(ctx context.Context, turfID int64, date *time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	prefixed := make([]string, len(bookingColumns))
	for i, c := range bookingColumns {
		prefixed[i] = "b." + c
	}

	selectBuilder := psqlbuilder.Select(prefixed...).
		From("bookings b").
		LeftJoin("turf_slots s ON s.turf_id = b.turf_id AND s.slot_date = b.booking_date AND s.start_time = b.start_time AND s.end_time = b.end_time").
		Where(squirrel.Eq{"b.turf_id": turfID}).
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		Where(squirrel.Or{
			squirrel.Eq{"s.id": nil},
			squirrel.Eq{"s.is_reserved": false},
		}).
		OrderBy("b.booking_date ASC, b.start_time ASC")

	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.booking_date": *date})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindUnsynced - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindUnsynced - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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

// scanBooking сканирует одну строку результата в бронирование
func (r *Repository) scanBooking(row *sql.Row, method string) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TurfID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.PlayerCount,
		&booking.TotalPrice,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.TurfID,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.EndTime,
			&booking.PlayerCount,
			&booking.TotalPrice,
			&booking.Status,
			&booking.PaymentStatus,
			&booking.CancellationReason,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isUniqueViolation проверяет нарушение частичного уникального индекса
// активных бронирований
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgUniqueViolation && pqErr.Constraint == activeSlotIndex
}
