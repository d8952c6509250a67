package turfs

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// TurfRepository интерфейс хранилища площадок
type TurfRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
	List(ctx context.Context, filter domain.TurfsFilter) ([]*domain.Turf, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
