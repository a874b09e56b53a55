package status

import (
	"context"
	"time"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек системы
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SystemStatus, error)
	SetActive(ctx context.Context, active bool) error
	SetAutoDeactivateAt(ctx context.Context, deadline time.Time) error
	ClearTimer(ctx context.Context) error
	Deactivate(ctx context.Context) error
}

// Notifier интерфейс для оповещения об изменениях настроек системы
type Notifier interface {
	SettingsChanged()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
