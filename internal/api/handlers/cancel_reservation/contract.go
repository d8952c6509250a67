package cancel_reservation

import (
	"context"

	cancelReservation "github.com/m04kA/SMC-TurfService/internal/usecase/cancel_reservation"
)

type CancelReservationUseCase interface {
	Execute(ctx context.Context, req cancelReservation.Request) (*cancelReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
