package get_slot_board

import (
	"net/http"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
)

type Handler struct {
	coordinator BoardCoordinator
	useCase     GetSlotBoardUseCase
	logger      Logger
}

func NewHandler(coordinator BoardCoordinator, useCase GetSlotBoardUseCase, logger Logger) *Handler {
	return &Handler{
		coordinator: coordinator,
		useCase:     useCase,
		logger:      logger,
	}
}

// Handle GET /api/v1/slots
// Отдает последний снимок координатора; до первого снимка собирает сетку напрямую
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if snap := h.coordinator.Current(); snap != nil {
		handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(snap.Version, snap.Board))
		return
	}

	board, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to build slot board: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(0, board))
}
