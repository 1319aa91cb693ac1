package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/services"
)

// ResetKeyVerifier defines the interface for checking a reset key.
type ResetKeyVerifier interface {
	VerifyResetKey(ctx context.Context, key string) error
}

// VerifyResetKeyResponse represents a valid reset key
// swagger:model VerifyResetKeyResponse
type VerifyResetKeyResponse struct {
	// Whether the key can be used
	// default: true
	Valid bool `json:"valid"`
}

// NewVerifyResetKeyHandler returns an HTTP handler that checks whether a
// reset key is currently usable without consuming it.
// @Summary Verify a password reset key
// @Description Check a reset key before showing the new-password form
// @Tags auth
// @Produce json
// @Param key query string true "Reset key"
// @Success 200 {object} handlers.VerifyResetKeyResponse "Key is valid"
// @Failure 400 {object} handlers.ErrorResponse "Missing key"
// @Failure 401 {object} handlers.ErrorResponse "Invalid or expired key"
// @Router /verify-reset-key [get]
func NewVerifyResetKeyHandler(svc ResetKeyVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("key")
		if key == "" {
			writeError(w, http.StatusBadRequest, "Reset key is required")
			return
		}

		if err := svc.VerifyResetKey(r.Context(), key); err != nil {
			switch {
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

		writeJSON(w, http.StatusOK, VerifyResetKeyResponse{Valid: true})
	}
}
