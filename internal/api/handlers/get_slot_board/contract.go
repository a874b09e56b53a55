package get_slot_board

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/service/liverefresh"
	getSlotBoard "github.com/m04kA/IRP-BookingService/internal/usecase/get_slot_board"
)

// BoardCoordinator интерфейс координатора живого обновления
type BoardCoordinator interface {
	Current() *liverefresh.Snapshot
}

// GetSlotBoardUseCase интерфейс use case сборки сетки
// Используется, пока координатор ещё не опубликовал первый снимок
type GetSlotBoardUseCase interface {
	Execute(ctx context.Context) (*getSlotBoard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
