package get_system_status

import (
	"net/http"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
)

type Handler struct {
	service StatusService
	logger  Logger
}

func NewHandler(service StatusService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/status
// Отдает флаг активности системы и состояние таймера автоотключения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetStatus())
}
