package set_deactivation_timer

import (
	"errors"
	"net/http"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
	"github.com/m04kA/IRP-BookingService/internal/service/status"
	"github.com/m04kA/IRP-BookingService/internal/service/status/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDuration    = "timer duration is out of range"
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

// Handle POST /api/v1/admin/system/timer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SetTimerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/system/timer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetTimer(r.Context(), req.Minutes)
	if err != nil {
		switch {
		case errors.Is(err, status.ErrInvalidDuration):
			h.logger.Warn("POST /admin/system/timer - Invalid duration: %d minutes", req.Minutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("POST /admin/system/timer - Failed: minutes=%d, error=%v", req.Minutes, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/system/timer - Timer armed for %d minutes", req.Minutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
