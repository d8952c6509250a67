package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByTurfWithFilter(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error)
	FindUnsynced(ctx context.Context, turfID int64, date *time.Time) ([]*domain.Booking, error)
}

// TurfRepository интерфейс хранилища площадок
type TurfRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
