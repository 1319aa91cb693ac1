package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/models"
	"github.com/skobelevsky/authgate/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password, displayName string) (*models.User, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password (minimum 8 characters)
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Display name shown to other users; defaults to the username
	DisplayName string `json:"displayName"`
}

// AuthResponse represents a successful registration or login response
// swagger:model AuthResponse
type AuthResponse struct {
	// Session token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// The authenticated user
	User *models.User `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Create an account and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.AuthResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already taken"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, token, err := svc.Register(r.Context(), req.Username, req.Email, req.Password, req.DisplayName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username or email already taken")
			case errors.Is(err, services.ErrWeakPassword):
				writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Username, email and password are required")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			Token: token,
			User:  user,
		})
	}
}
