package get_system_status

import (
	"github.com/m04kA/IRP-BookingService/internal/service/status/models"
)

type StatusService interface {
	GetStatus() *models.StatusResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
