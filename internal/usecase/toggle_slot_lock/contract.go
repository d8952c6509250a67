package toggle_slot_lock

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// TurfRepository интерфейс календаря слотов (Slot Store)
type TurfRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
	ToggleSlotLock(ctx context.Context, key domain.SlotKey) (domain.LockState, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
