package cancel_deactivation_timer

import (
	"errors"
	"net/http"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
	"github.com/m04kA/IRP-BookingService/internal/service/status"
)

const (
	msgTimerNotArmed = "no timer is currently armed"
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

// Handle DELETE /api/v1/admin/system/timer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CancelTimer(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, status.ErrTimerNotArmed):
			h.logger.Warn("DELETE /admin/system/timer - Timer not armed")
			handlers.RespondNotFound(w, msgTimerNotArmed)

		default:
			h.logger.Error("DELETE /admin/system/timer - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/system/timer - Timer cancelled")
	handlers.RespondJSON(w, http.StatusOK, result)
}
