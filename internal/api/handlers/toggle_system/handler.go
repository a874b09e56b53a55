package toggle_system

import (
	"net/http"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
	"github.com/m04kA/IRP-BookingService/internal/service/status/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/admin/system/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/system/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Toggle(r.Context(), req.Active)
	if err != nil {
		h.logger.Error("POST /admin/system/toggle - Failed: active=%v, error=%v", req.Active, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/system/toggle - System active=%v", result.SystemActive)
	handlers.RespondJSON(w, http.StatusOK, result)
}
