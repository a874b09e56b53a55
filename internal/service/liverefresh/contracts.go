package liverefresh

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/notify"
	"github.com/m04kA/IRP-BookingService/internal/usecase/get_slot_board"
)

// BoardSource интерфейс источника сетки слотов
type BoardSource interface {
	Execute(ctx context.Context) (*get_slot_board.Response, error)
}

// EventSource интерфейс источника событий об изменениях данных
type EventSource interface {
	Subscribe() chan notify.Event
	Unsubscribe(ch chan notify.Event)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
