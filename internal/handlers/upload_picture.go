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

// PictureSaver defines the interface for storing a profile picture.
type PictureSaver interface {
	SaveProfilePicture(ctx context.Context, userID uuid.UUID, encoded string) (string, error)
}

// UploadPictureRequest represents the JSON body for a profile picture upload
// swagger:model UploadPictureRequest
type UploadPictureRequest struct {
	// Base64-encoded image, with or without a data-URL prefix
	// required: true
	Image string `json:"image"`
}

// UploadPictureResponse represents a stored profile picture
// swagger:model UploadPictureResponse
type UploadPictureResponse struct {
	// Public URL of the stored image
	URL string `json:"url"`
}

// NewUploadPictureHandler returns an HTTP handler that stores a profile
// picture in object storage and records its URL on the user.
// @Summary Upload profile picture
// @Description Store a base64-encoded image and return its public URL
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uploadPictureRequest body handlers.UploadPictureRequest true "Upload Picture Request"
// @Success 200 {object} handlers.UploadPictureResponse "Image stored"
// @Failure 400 {object} handlers.ErrorResponse "Payload is not a valid image"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /upload-profile-picture [post]
func NewUploadPictureHandler(svc PictureSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req UploadPictureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		url, err := svc.SaveProfilePicture(r.Context(), claims.UserID, req.Image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrStorageUnavailable):
				writeError(w, http.StatusInternalServerError, "Storage not configured")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("upload failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to store image")
			}
			return
		}

		writeJSON(w, http.StatusOK, UploadPictureResponse{URL: url})
	}
}
