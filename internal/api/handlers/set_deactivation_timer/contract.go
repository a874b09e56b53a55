package set_deactivation_timer

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/service/status/models"
)

type StatusService interface {
	SetTimer(ctx context.Context, minutes int) (*models.StatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
