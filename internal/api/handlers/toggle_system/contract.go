package toggle_system

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/service/status/models"
)

type StatusService interface {
	Toggle(ctx context.Context, active bool) (*models.StatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
