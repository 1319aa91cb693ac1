package services_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/skobelevsky/authgate/internal/models"
	"github.com/skobelevsky/authgate/internal/services"
	"github.com/skobelevsky/authgate/internal/storage"
)

// Smallest payload http.DetectContentType sniffs as image/png.
var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "alice@example.com", DisplayName: "Alice"}, nil)

		svc := services.NewUserService(mockReader, nil, nil, nil)

		user, err := svc.GetProfile(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, "Alice", user.DisplayName)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		svc := services.NewUserService(mockReader, nil, nil, nil)

		_, err := svc.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	current := func() *models.UserDB {
		return &models.UserDB{UserID: userID, Email: "alice@example.com", DisplayName: "Alice", Age: intPtr(30)}
	}

	tests := []struct {
		name    string
		update  services.ProfileUpdate
		setup   func(reader *services.MockUserReader, writer *services.MockProfileWriter)
		want    func(t *testing.T, user *models.User)
		wantErr error
	}{
		{
			name:   "update display name only",
			update: services.ProfileUpdate{DisplayName: strPtr("Alice B")},
			setup: func(reader *services.MockUserReader, writer *services.MockProfileWriter) {
				reader.EXPECT().GetByID(gomock.Any(), userID).Return(current(), nil)
				writer.EXPECT().
					UpdateProfile(gomock.Any(), userID, "Alice B", intPtr(30)).
					Return(nil)
			},
			want: func(t *testing.T, user *models.User) {
				assert.Equal(t, "Alice B", user.DisplayName)
				assert.Equal(t, 30, *user.Age)
			},
		},
		{
			name:   "update age only",
			update: services.ProfileUpdate{Age: intPtr(31)},
			setup: func(reader *services.MockUserReader, writer *services.MockProfileWriter) {
				reader.EXPECT().GetByID(gomock.Any(), userID).Return(current(), nil)
				writer.EXPECT().
					UpdateProfile(gomock.Any(), userID, "Alice", intPtr(31)).
					Return(nil)
			},
			want: func(t *testing.T, user *models.User) {
				assert.Equal(t, "Alice", user.DisplayName)
				assert.Equal(t, 31, *user.Age)
			},
		},
		{
			name:   "blank display name rejected",
			update: services.ProfileUpdate{DisplayName: strPtr("   ")},
			setup: func(reader *services.MockUserReader, writer *services.MockProfileWriter) {
				reader.EXPECT().GetByID(gomock.Any(), userID).Return(current(), nil)
			},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:   "age out of range",
			update: services.ProfileUpdate{Age: intPtr(200)},
			setup: func(reader *services.MockUserReader, writer *services.MockProfileWriter) {
				reader.EXPECT().GetByID(gomock.Any(), userID).Return(current(), nil)
			},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:   "unknown user",
			update: services.ProfileUpdate{DisplayName: strPtr("Alice B")},
			setup: func(reader *services.MockUserReader, writer *services.MockProfileWriter) {
				reader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockProfileWriter(ctrl)
			tt.setup(mockReader, mockWriter)

			svc := services.NewUserService(mockReader, mockWriter, nil, nil)

			user, err := svc.UpdateProfile(context.Background(), userID, tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			tt.want(t, user)
		})
	}
}

func TestUserService_UpdateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("settings row moves with the email", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockProfileWriter(ctrl)
		mockSettings := services.NewMockSettingsMover(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "old@example.com"}, nil)
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "new@example.com").
			Return(nil, nil)
		mockWriter.EXPECT().
			UpdateEmail(gomock.Any(), userID, "new@example.com").
			Return(nil)
		mockSettings.EXPECT().
			MoveEmail(gomock.Any(), "old@example.com", "new@example.com").
			Return(nil)

		svc := services.NewUserService(mockReader, mockWriter, mockSettings, nil)

		user, err := svc.UpdateEmail(context.Background(), userID, " New@Example.com ")
		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("same email is a no-op", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "old@example.com"}, nil)

		svc := services.NewUserService(mockReader, nil, nil, nil)

		user, err := svc.UpdateEmail(context.Background(), userID, "old@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "old@example.com", user.Email)
	})

	t.Run("email already taken", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "old@example.com"}, nil)
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "taken@example.com").
			Return(&models.UserDB{UserID: uuid.New()}, nil)

		svc := services.NewUserService(mockReader, nil, nil, nil)

		_, err := svc.UpdateEmail(context.Background(), userID, "taken@example.com")
		assert.ErrorIs(t, err, services.ErrEmailTaken)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		svc := services.NewUserService(services.NewMockUserReader(ctrl), nil, nil, nil)

		_, err := svc.UpdateEmail(context.Background(), userID, "not-an-email")
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})
}

func TestUserService_SaveProfilePicture(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	encoded := base64.StdEncoding.EncodeToString(pngMagic)

	t.Run("bare base64 payload", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockProfileWriter(ctrl)
		mockUploader := storage.NewMockUploader(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID}, nil)
		mockUploader.EXPECT().
			UploadBytes(gomock.Any(), gomock.Any(), "image/png", pngMagic).
			DoAndReturn(func(_ context.Context, key, _ string, _ []byte) (string, error) {
				assert.True(t, strings.HasPrefix(key, "profile-pictures/"))
				return "https://cdn.example.com/" + key, nil
			})
		mockWriter.EXPECT().
			UpdateProfilePicture(gomock.Any(), userID, gomock.Any()).
			Return(nil)

		svc := services.NewUserService(mockReader, mockWriter, nil, mockUploader)

		url, err := svc.SaveProfilePicture(context.Background(), userID, encoded)
		assert.NoError(t, err)
		assert.Contains(t, url, "profile-pictures/")
	})

	t.Run("data-url prefix accepted", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockProfileWriter(ctrl)
		mockUploader := storage.NewMockUploader(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID}, nil)
		mockUploader.EXPECT().
			UploadBytes(gomock.Any(), gomock.Any(), "image/png", pngMagic).
			Return("https://cdn.example.com/pic", nil)
		mockWriter.EXPECT().
			UpdateProfilePicture(gomock.Any(), userID, "https://cdn.example.com/pic").
			Return(nil)

		svc := services.NewUserService(mockReader, mockWriter, nil, mockUploader)

		_, err := svc.SaveProfilePicture(context.Background(), userID, "data:image/png;base64,"+encoded)
		assert.NoError(t, err)
	})

	t.Run("non-image payload rejected", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockUploader := storage.NewMockUploader(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID}, nil)

		svc := services.NewUserService(mockReader, nil, nil, mockUploader)

		_, err := svc.SaveProfilePicture(context.Background(), userID,
			base64.StdEncoding.EncodeToString([]byte("just some text, not an image at all")))
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("invalid base64 rejected", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockUploader := storage.NewMockUploader(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID}, nil)

		svc := services.NewUserService(mockReader, nil, nil, mockUploader)

		_, err := svc.SaveProfilePicture(context.Background(), userID, "%%%not-base64%%%")
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("no uploader configured", func(t *testing.T) {
		svc := services.NewUserService(services.NewMockUserReader(ctrl), nil, nil, nil)

		_, err := svc.SaveProfilePicture(context.Background(), userID, encoded)
		assert.ErrorIs(t, err, services.ErrStorageUnavailable)
	})

	t.Run("upload failure surfaces", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockUploader := storage.NewMockUploader(ctrl)

		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID}, nil)
		mockUploader.EXPECT().
			UploadBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("s3 down"))

		svc := services.NewUserService(mockReader, nil, nil, mockUploader)

		_, err := svc.SaveProfilePicture(context.Background(), userID, encoded)
		assert.EqualError(t, err, "s3 down")
	})
}
