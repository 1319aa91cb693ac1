package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skobelevsky/authgate/internal/jwt"
	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/models"
	"github.com/skobelevsky/authgate/internal/services"
)

// SettingsGetter defines the interface for reading accessibility settings.
type SettingsGetter interface {
	Get(ctx context.Context, email string) (*models.Settings, error)
}

// SettingsUpdater defines the interface for patching accessibility settings.
type SettingsUpdater interface {
	Update(ctx context.Context, email string, update *services.SettingsUpdate) (*models.Settings, error)
}

// NewGetSettingsHandler returns an HTTP handler that serves the authenticated
// user's accessibility settings. Users with no stored settings get the
// defaults, always fully populated.
// @Summary Get accessibility settings
// @Description Return the accessibility settings of the authenticated user
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Settings "Current settings"
// @Router /accessibility-settings [get]
func NewGetSettingsHandler(svc SettingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		settings, err := svc.Get(r.Context(), claims.Email)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}

// NewUpdateSettingsHandler returns an HTTP handler that patches the
// authenticated user's accessibility settings and returns the resulting
// state. A body with no recognized fields changes nothing.
// @Summary Update accessibility settings
// @Description Patch accessibility settings; omitted fields are unchanged
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settingsUpdate body services.SettingsUpdate true "Settings patch"
// @Success 200 {object} models.Settings "Resulting settings"
// @Failure 400 {object} handlers.ErrorResponse "Invalid field value"
// @Router /accessibility-settings [put]
func NewUpdateSettingsHandler(svc SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var update services.SettingsUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		settings, err := svc.Update(r.Context(), claims.Email, &update)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}
