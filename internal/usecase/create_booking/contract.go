package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	"github.com/m04kA/IRP-BookingService/internal/integrations/mailer"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByUserID(ctx context.Context, userID string) (*domain.Booking, error)
	GetActiveBySlotID(ctx context.Context, slotID string) (*domain.Booking, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateTeamProfile(ctx context.Context, userID string, profile domain.TeamProfile) error
	UpdateTeamMembers(ctx context.Context, userID string, members []domain.TeamMember) error
}

// EventConfigRepository интерфейс репозитория конфигурации мероприятия
type EventConfigRepository interface {
	Get(ctx context.Context) (*domain.EventConfig, error)
}

// SettingsRepository интерфейс репозитория настроек системы
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SystemStatus, error)
}

// MailerClient интерфейс клиента рассылки
type MailerClient interface {
	SendBookingConfirmationWithGracefulDegradation(ctx context.Context, msg mailer.BookingConfirmation) error
}

// Notifier интерфейс для оповещения об изменениях данных бронирований
type Notifier interface {
	BookingsChanged()
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
