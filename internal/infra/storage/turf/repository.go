package turf

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfService/pkg/psqlbuilder"
)

// Repository репозиторий календаря площадок (Slot Store)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"description",
		"price_per_hour",
		"city",
		"category",
		"amenities",
		"length_m",
		"width_m",
		"created_at",
		"updated_at",
	).
		From("turfs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Turf
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.OwnerID,
		&t.Name,
		&t.Description,
		&t.PricePerHour,
		&t.City,
		&t.Category,
		pq.Array(&t.Amenities),
		&t.Dimensions.Length,
		&t.Dimensions.Width,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTurfNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan turf: %v", ErrScanRow, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

// List получает список площадок с фильтрацией по городу и категории
func (r *Repository) List(ctx context.Context, filter domain.TurfsFilter) ([]*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"description",
		"price_per_hour",
		"city",
		"category",
		"amenities",
		"length_m",
		"width_m",
		"created_at",
		"updated_at",
	).
		From("turfs").
		OrderBy("name ASC")

	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	turfs := make([]*domain.Turf, 0)
	for rows.Next() {
		var t domain.Turf
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.OwnerID,
			&t.Name,
			&t.Description,
			&t.PricePerHour,
			&t.City,
			&t.Category,
			pq.Array(&t.Amenities),
			&t.Dimensions.Length,
			&t.Dimensions.Width,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time
		turfs = append(turfs, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return turfs, nil
}

// GetDaySchedule получает упорядоченный список слотов площадки на дату.
// Дата должна быть нормализована к полуночи UTC до вызова.
// Возвращает ErrScheduleNotFound, если на эту дату слоты не засеяны.
func (r *Repository) GetDaySchedule(ctx context.Context, turfID int64, date time.Time) (*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"turf_id",
		"slot_date",
		"start_time",
		"end_time",
		"max_players",
		"is_reserved",
		"lock_state",
	).
		From("turf_slots").
		Where(squirrel.Eq{"turf_id": turfID, "slot_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDaySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDaySchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		err := rows.Scan(
			&s.ID,
			&s.TurfID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.MaxPlayers,
			&s.Reserved,
			&s.LockState,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetDaySchedule - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDaySchedule - rows error: %v", ErrScanRow, err)
	}

	// Пустое расписание означает, что дата не засеяна
	if len(slots) == 0 {
		return nil, ErrScheduleNotFound
	}

	return &domain.DaySchedule{TurfID: turfID, Date: date, Slots: slots}, nil
}

// SetSlotReserved is a conditional update: it locates the slot by the
// four-part key and sets its reserved flag. The returned matched flag
// reports whether any slot was found. Setting an already-set flag again is
// a no-op, not an error, so the call is safe to repeat.
func (r *Repository) SetSlotReserved(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turf_slots").
		Set("is_reserved", reserved).
		Where(squirrel.Eq{
			"turf_id":    key.TurfID,
			"slot_date":  key.Date,
			"start_time": key.StartTime,
			"end_time":   key.EndTime,
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: SetSlotReserved - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: SetSlotReserved - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: SetSlotReserved - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// ToggleSlotLock переключает ручную блокировку слота locked <-> unlocked
// и возвращает новое состояние
func (r *Repository) ToggleSlotLock(ctx context.Context, key domain.SlotKey) (domain.LockState, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turf_slots").
		Set("lock_state", squirrel.Expr(
			"CASE lock_state WHEN ? THEN ? ELSE ? END",
			domain.LockStateLocked, domain.LockStateUnlocked, domain.LockStateLocked,
		)).
		Where(squirrel.Eq{
			"turf_id":    key.TurfID,
			"slot_date":  key.Date,
			"start_time": key.StartTime,
			"end_time":   key.EndTime,
		}).
		Suffix("RETURNING lock_state").
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: ToggleSlotLock - build update query: %v", ErrBuildQuery, err)
	}

	var state domain.LockState
	err = executor.QueryRowContext(ctx, query, args...).Scan(&state)
	if err == sql.ErrNoRows {
		return "", ErrSlotNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: ToggleSlotLock - execute update: %v", ErrExecQuery, err)
	}

	return state, nil
}

// SeedSlots populates the calendar for the given dates from a daily
// template. Existing slots are left untouched (ON CONFLICT DO NOTHING),
// so re-seeding a horizon is idempotent. Returns the number of slots
// actually inserted.
func (r *Repository) SeedSlots(ctx context.Context, turfID int64, dates []time.Time, template []domain.SlotTemplate) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(dates) == 0 || len(template) == 0 {
		return 0, nil
	}

	insertBuilder := psqlbuilder.Insert("turf_slots").
		Columns("turf_id", "slot_date", "start_time", "end_time", "max_players", "is_reserved", "lock_state")

	for _, date := range dates {
		for _, tpl := range template {
			insertBuilder = insertBuilder.Values(
				turfID,
				date,
				tpl.StartTime,
				tpl.EndTime,
				tpl.MaxPlayers,
				false,
				domain.LockStateUnlocked,
			)
		}
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (turf_id, slot_date, start_time, end_time) DO NOTHING").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SeedSlots - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: SeedSlots - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: SeedSlots - get rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}
