package get_my_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
	"github.com/m04kA/IRP-BookingService/internal/api/middleware"
	"github.com/m04kA/IRP-BookingService/internal/service/bookings"
	"github.com/m04kA/IRP-BookingService/pkg/authtoken"
)

const (
	msgAccessDenied    = "you can only view your own booking"
	msgBookingNotFound = "no active booking found"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	userID := mux.Vars(r)["userId"]

	// Свое бронирование видит владелец; администратору доступны все
	if claims.SubjectID != userID && claims.Role != authtoken.RoleAdmin {
		h.logger.Warn("GET /users/{userId}/booking - Access denied: requester=%s, target=%s",
			claims.SubjectID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.GetUserBooking(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /users/{userId}/booking - Failed: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
