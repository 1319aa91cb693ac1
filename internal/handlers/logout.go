package handlers

import (
	"net/http"

	"github.com/skobelevsky/authgate/internal/jwt"
	"github.com/skobelevsky/authgate/internal/logger"
)

// NewLogoutHandler returns an HTTP handler for logout. Tokens are stateless,
// so this is advisory: the client discards its token, the server only logs.
// @Summary User logout
// @Description Acknowledge logout; the client is expected to discard its token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Router /logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims := jwt.ClaimsFromContext(r.Context()); claims != nil {
			logger.Log.Infow("user logged out", "user_id", claims.UserID)
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}
