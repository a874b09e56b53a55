package get_event_config

import (
	"net/http"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/config
// Отдает конфигурацию мероприятия для страницы бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /config - Failed to load event config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, cfg)
}
