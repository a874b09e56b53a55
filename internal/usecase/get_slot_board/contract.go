package get_slot_board

import (
	"context"
	"time"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetAllActive(ctx context.Context) ([]*domain.BookingWithUser, error)
}

// EventConfigRepository интерфейс репозитория конфигурации мероприятия
type EventConfigRepository interface {
	Get(ctx context.Context) (*domain.EventConfig, error)
}

// SettingsRepository интерфейс репозитория настроек системы
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SystemStatus, error)
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
