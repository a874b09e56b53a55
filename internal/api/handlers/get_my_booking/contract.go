package get_my_booking

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetUserBooking(ctx context.Context, userID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
