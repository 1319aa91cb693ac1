package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/skobelevsky/authgate/internal/logger"
)

// ResetRequester defines the interface for starting a password reset.
type ResetRequester interface {
	RequestReset(ctx context.Context, email string) error
}

// ForgotPasswordRequest represents the JSON body for requesting a password reset
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// NewForgotPasswordHandler returns an HTTP handler that starts a password
// reset. The response is the same whether or not the email is registered.
// @Summary Request a password reset
// @Description Send a reset link if an account with the given email exists
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} handlers.MessageResponse "Reset requested"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /forgot-password [post]
func NewForgotPasswordHandler(svc ResetRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		email := strings.TrimSpace(strings.ToLower(req.Email))
		if email == "" {
			writeError(w, http.StatusBadRequest, "Email is required")
			return
		}

		if err := svc.RequestReset(r.Context(), email); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Message: "If that email is registered, a reset link has been sent",
		})
	}
}
