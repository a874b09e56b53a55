package users

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateTeamProfile(ctx context.Context, userID string, profile domain.TeamProfile) error
	UpdateTeamMembers(ctx context.Context, userID string, members []domain.TeamMember) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
