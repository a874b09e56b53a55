package update_profile

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
	"github.com/m04kA/IRP-BookingService/internal/api/middleware"
	"github.com/m04kA/IRP-BookingService/internal/service/users"
	"github.com/m04kA/IRP-BookingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAccessDenied       = "you can only update your own profile"
	msgUserNotFound       = "user not found"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/users/{userId}/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	userID := mux.Vars(r)["userId"]

	if claims.SubjectID != userID {
		h.logger.Warn("PUT /users/{userId}/profile - Access denied: requester=%s, target=%s",
			claims.SubjectID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{userId}/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /users/{userId}/profile - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /users/{userId}/profile - Failed: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{userId}/profile - Profile updated: user=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
