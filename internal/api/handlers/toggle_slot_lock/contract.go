package toggle_slot_lock

import (
	"context"

	toggleSlotLock "github.com/m04kA/SMC-TurfService/internal/usecase/toggle_slot_lock"
)

type ToggleSlotLockUseCase interface {
	Execute(ctx context.Context, req toggleSlotLock.Request) (*toggleSlotLock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
