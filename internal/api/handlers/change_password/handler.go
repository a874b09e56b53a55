package change_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
	"github.com/m04kA/IRP-BookingService/internal/service/auth"
	"github.com/m04kA/IRP-BookingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgWrongPassword      = "current password is incorrect"
	msgPasswordTooShort   = "new password is too short"
	msgInvalidCredentials = "invalid credentials"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ChangeAdminPassword(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, auth.ErrWrongPassword):
			h.logger.Warn("PUT /admin/password - Wrong current password: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgWrongPassword)

		case errors.Is(err, auth.ErrPasswordTooShort):
			h.logger.Warn("PUT /admin/password - Password too short: username=%s", req.Username)
			handlers.RespondBadRequest(w, msgPasswordTooShort)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("PUT /admin/password - Unknown admin: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("PUT /admin/password - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/password - Failed: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/password - Password changed: username=%s", req.Username)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}
