package stream_events

import (
	"github.com/m04kA/IRP-BookingService/internal/service/liverefresh"
)

// BoardCoordinator интерфейс координатора живого обновления
type BoardCoordinator interface {
	Subscribe() (chan *liverefresh.Snapshot, *liverefresh.Snapshot)
	Unsubscribe(ch chan *liverefresh.Snapshot)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
