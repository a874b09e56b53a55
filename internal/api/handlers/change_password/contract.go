package change_password

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/service/auth/models"
)

type AuthService interface {
	ChangeAdminPassword(ctx context.Context, req *models.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
