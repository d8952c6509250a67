package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// TurfRepository интерфейс календаря слотов (Slot Store)
type TurfRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
	GetDaySchedule(ctx context.Context, turfID int64, date time.Time) (*domain.DaySchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
