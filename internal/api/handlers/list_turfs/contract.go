package list_turfs

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/service/turfs/models"
)

type TurfService interface {
	List(ctx context.Context, req *models.ListTurfsRequest) (*models.TurfListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
