package admin_login

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/service/auth/models"
)

type AuthService interface {
	AdminLogin(ctx context.Context, req *models.AdminLoginRequest) (*models.AdminAuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
