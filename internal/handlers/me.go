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

// ProfileGetter defines the interface for reading the current user's profile.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// ProfileUpdater defines the interface for patching the current user's profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, update services.ProfileUpdate) (*models.User, error)
}

// UpdateProfileRequest represents the JSON body for a profile patch.
// Omitted fields are left unchanged.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Display name shown to other users
	DisplayName *string `json:"displayName"`

	// Age in years
	Age *int `json:"age"`
}

// NewGetMeHandler returns an HTTP handler that serves the authenticated
// user's profile.
// @Summary Get current user
// @Description Return the profile of the authenticated user
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Current user"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /me [get]
func NewGetMeHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			switch {
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

// NewUpdateMeHandler returns an HTTP handler that patches the authenticated
// user's profile.
// @Summary Update current user
// @Description Patch display name and age of the authenticated user
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid field value"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /me [put]
func NewUpdateMeHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.UpdateProfile(r.Context(), claims.UserID, services.ProfileUpdate{
			DisplayName: req.DisplayName,
			Age:         req.Age,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Invalid profile field")
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
