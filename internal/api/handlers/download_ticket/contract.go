package download_ticket

import "context"

type TicketService interface {
	Generate(ctx context.Context, bookingID, requesterID string) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
