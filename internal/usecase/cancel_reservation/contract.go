package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований (Booking Ledger)
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// TurfRepository интерфейс календаря слотов (Slot Store)
type TurfRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
	SetSlotReserved(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
