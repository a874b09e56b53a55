package eventconfig

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

// EventConfigRepository интерфейс репозитория конфигурации мероприятия
type EventConfigRepository interface {
	Get(ctx context.Context) (*domain.EventConfig, error)
	Save(ctx context.Context, cfg *domain.EventConfig) error
	Seed(ctx context.Context, cfg *domain.EventConfig) error
}

// Notifier интерфейс для оповещения об изменении конфигурации
type Notifier interface {
	ConfigChanged()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
