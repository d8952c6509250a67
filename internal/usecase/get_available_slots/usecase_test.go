package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

type fakeTurfRepo struct {
	getByIDFn        func(ctx context.Context, id int64) (*domain.Turf, error)
	getDayScheduleFn func(ctx context.Context, turfID int64, date time.Time) (*domain.DaySchedule, error)
}

func (f *fakeTurfRepo) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeTurfRepo) GetDaySchedule(ctx context.Context, turfID int64, date time.Time) (*domain.DaySchedule, error) {
	return f.getDayScheduleFn(ctx, turfID, date)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func slot(start, end string, reserved bool, lock domain.LockState) domain.Slot {
	return domain.Slot{
		TurfID:     7,
		Date:       testDate,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
		MaxPlayers: 10,
		Reserved:   reserved,
		LockState:  lock,
	}
}

func TestExecuteFiltersReservedAndLocked(t *testing.T) {
	repo := &fakeTurfRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return &domain.Turf{ID: id}, nil
		},
		getDayScheduleFn: func(ctx context.Context, turfID int64, date time.Time) (*domain.DaySchedule, error) {
			assert.Equal(t, testDate, date)
			return &domain.DaySchedule{
				TurfID: turfID,
				Date:   date,
				Slots: []domain.Slot{
					slot("06:00", "07:00", false, domain.LockStateUnlocked),
					slot("07:00", "08:00", true, domain.LockStateUnlocked),
					slot("08:00", "09:00", false, domain.LockStateLocked),
					slot("09:00", "10:00", true, domain.LockStateLocked),
					slot("10:00", "11:00", false, domain.LockStateUnlocked),
				},
			}, nil
		},
	}

	uc := NewUseCase(repo, nopLogger{})
	// Дата приходит с временем суток и смещением, нормализация обязана его срезать
	resp, err := uc.Execute(context.Background(), &Request{
		TurfID: 7,
		Date:   time.Date(2024, 6, 10, 18, 45, 0, 0, time.FixedZone("MSK", 3*3600)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.TurfID)
	assert.Equal(t, testDate, resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "06:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "10:00", resp.Slots[1].StartTime.String())
}

func TestExecuteAllSlotsTaken(t *testing.T) {
	repo := &fakeTurfRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return &domain.Turf{ID: id}, nil
		},
		getDayScheduleFn: func(ctx context.Context, turfID int64, date time.Time) (*domain.DaySchedule, error) {
			return &domain.DaySchedule{
				TurfID: turfID,
				Date:   date,
				Slots: []domain.Slot{
					slot("06:00", "07:00", true, domain.LockStateUnlocked),
				},
			}, nil
		},
	}

	uc := NewUseCase(repo, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{TurfID: 7, Date: testDate})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecuteTurfNotFound(t *testing.T) {
	repo := &fakeTurfRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return nil, turfRepo.ErrTurfNotFound
		},
	}

	uc := NewUseCase(repo, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{TurfID: 404, Date: testDate})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestExecuteScheduleNotFound(t *testing.T) {
	repo := &fakeTurfRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return &domain.Turf{ID: id}, nil
		},
		getDayScheduleFn: func(ctx context.Context, turfID int64, date time.Time) (*domain.DaySchedule, error) {
			return nil, turfRepo.ErrScheduleNotFound
		},
	}

	uc := NewUseCase(repo, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{TurfID: 7, Date: testDate})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeTurfRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TurfID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TurfID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
