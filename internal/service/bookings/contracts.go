package bookings

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetActiveByUserID(ctx context.Context, userID string) (*domain.Booking, error)
	GetAllActive(ctx context.Context) ([]*domain.BookingWithUser, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Notifier интерфейс для оповещения об изменениях данных бронирований
type Notifier interface {
	BookingsChanged()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
