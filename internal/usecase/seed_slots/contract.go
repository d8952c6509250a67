package seed_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// TurfRepository интерфейс календаря слотов (Slot Store)
type TurfRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
	SeedSlots(ctx context.Context, turfID int64, dates []time.Time, template []domain.SlotTemplate) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
