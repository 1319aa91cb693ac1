package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/models"
	"github.com/skobelevsky/authgate/internal/storage"
)

// Profile pictures above this size are rejected before touching storage.
const maxPictureBytes = 5 * 1024 * 1024

// ProfileUpdate is a pointer-field patch: nil means "leave unchanged".
type ProfileUpdate struct {
	DisplayName *string
	Age         *int
}

// ProfileWriter defines the write operations the profile flows need.
type ProfileWriter interface {
	UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, displayName string, age *int) error
	UpdateProfilePicture(ctx context.Context, userID uuid.UUID, url string) error
}

// SettingsMover re-keys a settings row when the owning email changes.
type SettingsMover interface {
	MoveEmail(ctx context.Context, oldEmail, newEmail string) error
}

// UserService handles profile reads and updates.
type UserService struct {
	reader   UserReader
	writer   ProfileWriter
	settings SettingsMover
	uploader storage.Uploader
}

// NewUserService creates a new UserService. The uploader may be nil; the
// picture upload endpoint then reports storage as unavailable.
func NewUserService(reader UserReader, writer ProfileWriter, settings SettingsMover, uploader storage.Uploader) *UserService {
	return &UserService{
		reader:   reader,
		writer:   writer,
		settings: settings,
		uploader: uploader,
	}
}

// GetProfile returns the user's profile.
func (svc *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.ToUser(), nil
}

// UpdateProfile applies a pointer-field patch to display name and age.
func (svc *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	displayName := user.DisplayName
	if update.DisplayName != nil {
		displayName = strings.TrimSpace(*update.DisplayName)
		if displayName == "" {
			return nil, ErrInvalidInput
		}
	}

	age := user.Age
	if update.Age != nil {
		if *update.Age < 0 || *update.Age > 150 {
			return nil, ErrInvalidInput
		}
		age = update.Age
	}

	if err := svc.writer.UpdateProfile(ctx, userID, displayName, age); err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}

	user.DisplayName = displayName
	user.Age = age
	return user.ToUser(), nil
}

// UpdateEmail changes the account email. The settings row is keyed by email,
// so it moves with the user.
func (svc *UserService) UpdateEmail(ctx context.Context, userID uuid.UUID, newEmail string) (*models.User, error) {
	newEmail = strings.TrimSpace(strings.ToLower(newEmail))
	if newEmail == "" || !strings.Contains(newEmail, "@") {
		return nil, ErrInvalidInput
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Email == newEmail {
		return user.ToUser(), nil
	}

	existing, err := svc.reader.GetByEmail(ctx, newEmail)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if err := svc.writer.UpdateEmail(ctx, userID, newEmail); err != nil {
		logger.Log.Errorw("failed to update email", "user_id", userID, "err", err)
		return nil, err
	}

	if err := svc.settings.MoveEmail(ctx, user.Email, newEmail); err != nil {
		logger.Log.Errorw("failed to move settings row", "user_id", userID, "err", err)
		return nil, err
	}

	user.Email = newEmail
	return user.ToUser(), nil
}

// SaveProfilePicture decodes a base64 payload (with or without a data-URL
// prefix), stores it in object storage and persists the resulting URL.
func (svc *UserService) SaveProfilePicture(ctx context.Context, userID uuid.UUID, encoded string) (string, error) {
	if svc.uploader == nil {
		return "", ErrStorageUnavailable
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	data, contentType, err := decodeImagePayload(encoded)
	if err != nil {
		return "", err
	}
	if len(data) > maxPictureBytes {
		return "", fmt.Errorf("%w: image exceeds %d bytes", ErrInvalidInput, maxPictureBytes)
	}

	key := storage.StorageKey("profile-pictures")
	url, err := svc.uploader.UploadBytes(ctx, key, contentType, data)
	if err != nil {
		logger.Log.Errorw("failed to upload profile picture", "user_id", userID, "err", err)
		return "", err
	}

	if err := svc.writer.UpdateProfilePicture(ctx, userID, url); err != nil {
		logger.Log.Errorw("failed to persist picture url", "user_id", userID, "err", err)
		return "", err
	}

	return url, nil
}

// decodeImagePayload accepts "data:image/png;base64,..." or a bare base64
// string and returns the raw bytes plus a sniffed content type.
func decodeImagePayload(encoded string) ([]byte, string, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, "", ErrInvalidInput
	}

	if strings.HasPrefix(encoded, "data:") {
		idx := strings.Index(encoded, ",")
		if idx < 0 {
			return nil, "", ErrInvalidInput
		}
		encoded = encoded[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid base64 payload", ErrInvalidInput)
	}
	if len(data) == 0 {
		return nil, "", ErrInvalidInput
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("%w: payload is not an image", ErrInvalidInput)
	}

	return data, contentType, nil
}
