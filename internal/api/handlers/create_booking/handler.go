package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
	"github.com/m04kA/IRP-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/IRP-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSystemInactive     = "the booking system is currently closed"
	msgSlotTaken          = "this slot has just been booked by another team"
	msgAlreadyBooked      = "your team already has a booked slot"
	msgSlotNotFound       = "slot not found"
	msgEnrollmentClosed   = "enrollment is closed for this date"
	msgUserNotFound       = "user account not found"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(claims.SubjectID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSystemInactive):
			h.logger.Warn("POST /bookings - System inactive: user=%s", claims.SubjectID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSystemInactive)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user=%s, slot=%s", claims.SubjectID, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrAlreadyBooked):
			h.logger.Warn("POST /bookings - Already booked: user=%s", claims.SubjectID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBooked)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrEnrollmentClosed):
			h.logger.Warn("POST /bookings - Enrollment closed: user=%s, slot=%s", claims.SubjectID, req.SlotID)
			handlers.RespondError(w, http.StatusForbidden, msgEnrollmentClosed)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user=%s", claims.SubjectID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, slot=%s, error=%v",
				claims.SubjectID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, user=%s, slot=%s",
		result.ID, claims.SubjectID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
