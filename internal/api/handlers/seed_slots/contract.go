package seed_slots

import (
	"context"

	seedSlots "github.com/m04kA/SMC-TurfService/internal/usecase/seed_slots"
)

type SeedSlotsUseCase interface {
	Execute(ctx context.Context, req seedSlots.Request) (*seedSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
