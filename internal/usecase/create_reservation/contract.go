package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/internal/integrations/paymentservice"
)

// BookingRepository интерфейс журнала бронирований (Reservation Ledger)
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindActiveBooking(ctx context.Context, key domain.SlotKey) (*domain.Booking, error)
}

// TurfRepository интерфейс календаря слотов (Slot Store)
type TurfRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
	SetSlotReserved(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error)
}

// PaymentServiceClient интерфейс клиента для PaymentService
type PaymentServiceClient interface {
	GetLatestPaymentWithGracefulDegradation(ctx context.Context, userID int64, amount float64) (*paymentservice.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
