package download_ticket

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
	"github.com/m04kA/IRP-BookingService/internal/api/middleware"
	"github.com/m04kA/IRP-BookingService/internal/service/ticket"
)

const (
	msgBookingNotFound = "booking not found"
	msgAccessDenied    = "you can only download your own ticket"
)

type Handler struct {
	service TicketService
	logger  Logger
}

func NewHandler(service TicketService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/ticket
// Отдает PDF билет владельцу бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	pdf, err := h.service.Generate(r.Context(), bookingID, claims.SubjectID)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, ticket.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{bookingId}/ticket - Access denied: requester=%s, booking=%s",
				claims.SubjectID, bookingID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/{bookingId}/ticket - Failed: booking=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=ticket-"+bookingID+".pdf")
	w.Write(pdf)
}
