package update_event_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
	"github.com/m04kA/IRP-BookingService/internal/domain"
	eventcfg "github.com/m04kA/IRP-BookingService/internal/service/eventconfig"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service EventConfigService
	logger  Logger
}

func NewHandler(service EventConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var cfg domain.EventConfig
	if err := handlers.DecodeJSON(r, &cfg); err != nil {
		h.logger.Warn("PUT /admin/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), &cfg); err != nil {
		switch {
		case errors.Is(err, eventcfg.ErrInvalidConfig):
			h.logger.Warn("PUT /admin/config - Invalid config: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/config - Failed to update config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/config - Event config updated")
	handlers.RespondJSON(w, http.StatusOK, cfg)
}
