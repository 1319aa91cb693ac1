package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/skobelevsky/authgate/internal/jwt"
	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/models"
	"github.com/skobelevsky/authgate/internal/services"
)

// EmailUpdater defines the interface for changing the account email.
type EmailUpdater interface {
	UpdateEmail(ctx context.Context, userID uuid.UUID, newEmail string) (*models.User, error)
}

// UpdateEmailRequest represents the JSON body for an email change
// swagger:model UpdateEmailRequest
type UpdateEmailRequest struct {
	// New email address
	// required: true
	// default: new@example.com
	Email string `json:"email"`
}

// NewUpdateEmailHandler returns an HTTP handler that changes the
// authenticated user's email. Stored accessibility settings follow the
// account to the new address.
// @Summary Update email
// @Description Change the email of the authenticated user
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateEmailRequest body handlers.UpdateEmailRequest true "Update Email Request"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Malformed email"
// @Failure 409 {object} handlers.ErrorResponse "Email already taken"
// @Router /update-email [post]
func NewUpdateEmailHandler(svc EmailUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req UpdateEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.UpdateEmail(r.Context(), claims.UserID, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "A valid email is required")
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusConflict, "Email already taken")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
