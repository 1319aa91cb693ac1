package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/services"
)

// PasswordResetter defines the interface for consuming a reset key.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, key, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for completing a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Reset key from the emailed link
	// required: true
	Key string `json:"key"`

	// New password (minimum 8 characters)
	// required: true
	NewPassword string `json:"newPassword"`
}

// NewResetPasswordHandler returns an HTTP handler that sets a new password
// using a reset key. The key is single use.
// @Summary Complete a password reset
// @Description Set a new password using a valid reset key
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} handlers.MessageResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Missing key or weak password"
// @Failure 401 {object} handlers.ErrorResponse "Invalid or expired key"
// @Router /reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.Key == "" {
			writeError(w, http.StatusBadRequest, "Reset key is required")
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Key, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrWeakPassword):
				writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
			case errors.Is(err, services.ErrResetKeyExpired):
				writeError(w, http.StatusUnauthorized, "Reset key has expired")
			case errors.Is(err, services.ErrResetKeyInvalid):
				writeError(w, http.StatusUnauthorized, "Invalid reset key")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated"})
	}
}
