package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/skobelevsky/authgate/internal/jwt"
	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/services"
)

// PasswordChanger defines the interface for changing a known password.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
}

// ChangePasswordRequest represents the JSON body for changing a password
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	OldPassword string `json:"oldPassword"`

	// New password (minimum 8 characters)
	// required: true
	NewPassword string `json:"newPassword"`
}

// NewChangePasswordHandler returns an HTTP handler that changes the password
// of the authenticated user.
// @Summary Change password
// @Description Set a new password after verifying the current one
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} handlers.MessageResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Weak new password"
// @Failure 401 {object} handlers.ErrorResponse "Wrong current password"
// @Router /change-password [put]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.ChangePassword(r.Context(), claims.UserID, req.OldPassword, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Current password is incorrect")
			case errors.Is(err, services.ErrWeakPassword):
				writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated"})
	}
}
