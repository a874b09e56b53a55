package get_event_config

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

type EventConfigService interface {
	Get(ctx context.Context) (*domain.EventConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
