package update_event_config

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

type EventConfigService interface {
	Update(ctx context.Context, cfg *domain.EventConfig) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
