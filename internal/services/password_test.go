package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/skobelevsky/authgate/internal/models"
	"github.com/skobelevsky/authgate/internal/services"
)

func TestPasswordService_RequestReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("known email sets key and sends mail", func(t *testing.T) {
		mockReader := services.NewMockResetUserReader(ctrl)
		mockWriter := services.NewMockResetUserWriter(ctrl)
		mockMailer := services.NewMockResetMailer(ctrl)

		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "alice@example.com").
			Return(&models.UserDB{UserID: userID, Email: "alice@example.com"}, nil)

		var capturedKey string
		mockWriter.EXPECT().
			SetResetKey(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, key string, expiresAt time.Time) error {
				capturedKey = key
				assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
				return nil
			})
		mockMailer.EXPECT().
			SendResetKey(gomock.Any(), "alice@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, key string) error {
				assert.Equal(t, capturedKey, key)
				return nil
			})

		svc := services.NewPasswordService(mockReader, mockWriter, mockMailer, nil)

		err := svc.RequestReset(context.Background(), "alice@example.com")
		assert.NoError(t, err)
		assert.Len(t, capturedKey, 64)
	})

	t.Run("unknown email succeeds without writes", func(t *testing.T) {
		mockReader := services.NewMockResetUserReader(ctrl)
		mockWriter := services.NewMockResetUserWriter(ctrl)

		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, nil)

		svc := services.NewPasswordService(mockReader, mockWriter, nil, nil)

		err := svc.RequestReset(context.Background(), "nobody@example.com")
		assert.NoError(t, err)
	})

	t.Run("mailer failure does not surface", func(t *testing.T) {
		mockReader := services.NewMockResetUserReader(ctrl)
		mockWriter := services.NewMockResetUserWriter(ctrl)
		mockMailer := services.NewMockResetMailer(ctrl)

		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "alice@example.com").
			Return(&models.UserDB{UserID: userID, Email: "alice@example.com"}, nil)
		mockWriter.EXPECT().
			SetResetKey(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(nil)
		mockMailer.EXPECT().
			SendResetKey(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp down"))

		svc := services.NewPasswordService(mockReader, mockWriter, mockMailer, nil)

		err := svc.RequestReset(context.Background(), "alice@example.com")
		assert.NoError(t, err)
	})

	t.Run("persist failure surfaces", func(t *testing.T) {
		mockReader := services.NewMockResetUserReader(ctrl)
		mockWriter := services.NewMockResetUserWriter(ctrl)

		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "alice@example.com").
			Return(&models.UserDB{UserID: userID, Email: "alice@example.com"}, nil)
		mockWriter.EXPECT().
			SetResetKey(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		svc := services.NewPasswordService(mockReader, mockWriter, nil, nil)

		err := svc.RequestReset(context.Background(), "alice@example.com")
		assert.EqualError(t, err, "db error")
	})
}

func TestPasswordService_VerifyResetKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	future := time.Now().Add(30 * time.Minute)
	past := time.Now().Add(-time.Minute)

	tests := []struct {
		name    string
		key     string
		setup   func(reader *services.MockResetUserReader, writer *services.MockResetUserWriter)
		wantErr error
	}{
		{
			name: "valid key",
			key:  "goodkey",
			setup: func(reader *services.MockResetUserReader, writer *services.MockResetUserWriter) {
				reader.EXPECT().
					GetByResetKey(gomock.Any(), "goodkey").
					Return(&models.UserDB{UserID: userID, ResetKeyExpiresAt: &future}, nil)
			},
		},
		{
			name:    "empty key",
			key:     "",
			setup:   func(reader *services.MockResetUserReader, writer *services.MockResetUserWriter) {},
			wantErr: services.ErrResetKeyInvalid,
		},
		{
			name: "unknown key",
			key:  "badkey",
			setup: func(reader *services.MockResetUserReader, writer *services.MockResetUserWriter) {
				reader.EXPECT().
					GetByResetKey(gomock.Any(), "badkey").
					Return(nil, nil)
			},
			wantErr: services.ErrResetKeyInvalid,
		},
		{
			name: "expired key is cleared",
			key:  "oldkey",
			setup: func(reader *services.MockResetUserReader, writer *services.MockResetUserWriter) {
				reader.EXPECT().
					GetByResetKey(gomock.Any(), "oldkey").
					Return(&models.UserDB{UserID: userID, ResetKeyExpiresAt: &past}, nil)
				writer.EXPECT().
					ClearResetKey(gomock.Any(), userID).
					Return(nil)
			},
			wantErr: services.ErrResetKeyExpired,
		},
		{
			name: "key without expiry treated as expired",
			key:  "nokey-expiry",
			setup: func(reader *services.MockResetUserReader, writer *services.MockResetUserWriter) {
				reader.EXPECT().
					GetByResetKey(gomock.Any(), "nokey-expiry").
					Return(&models.UserDB{UserID: userID, ResetKeyExpiresAt: nil}, nil)
				writer.EXPECT().
					ClearResetKey(gomock.Any(), userID).
					Return(nil)
			},
			wantErr: services.ErrResetKeyExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockResetUserReader(ctrl)
			mockWriter := services.NewMockResetUserWriter(ctrl)
			tt.setup(mockReader, mockWriter)

			svc := services.NewPasswordService(mockReader, mockWriter, nil, nil)

			err := svc.VerifyResetKey(context.Background(), tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPasswordService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	future := time.Now().Add(30 * time.Minute)

	t.Run("success consumes the key", func(t *testing.T) {
		mockReader := services.NewMockResetUserReader(ctrl)
		mockWriter := services.NewMockResetUserWriter(ctrl)

		mockReader.EXPECT().
			GetByResetKey(gomock.Any(), "goodkey").
			Return(&models.UserDB{UserID: userID, Email: "alice@example.com", ResetKeyExpiresAt: &future}, nil)
		mockWriter.EXPECT().
			UpdatePassword(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password")))
				return nil
			})
		mockWriter.EXPECT().
			ClearResetKey(gomock.Any(), userID).
			Return(nil)

		svc := services.NewPasswordService(mockReader, mockWriter, nil, nil)

		err := svc.ResetPassword(context.Background(), "goodkey", "new-password")
		assert.NoError(t, err)
	})

	t.Run("weak password rejected before any write", func(t *testing.T) {
		mockReader := services.NewMockResetUserReader(ctrl)
		mockWriter := services.NewMockResetUserWriter(ctrl)

		mockReader.EXPECT().
			GetByResetKey(gomock.Any(), "goodkey").
			Return(&models.UserDB{UserID: userID, ResetKeyExpiresAt: &future}, nil)

		svc := services.NewPasswordService(mockReader, mockWriter, nil, nil)

		err := svc.ResetPassword(context.Background(), "goodkey", "short")
		assert.ErrorIs(t, err, services.ErrWeakPassword)
	})

	t.Run("invalid key", func(t *testing.T) {
		mockReader := services.NewMockResetUserReader(ctrl)
		mockWriter := services.NewMockResetUserWriter(ctrl)

		mockReader.EXPECT().
			GetByResetKey(gomock.Any(), "badkey").
			Return(nil, nil)

		svc := services.NewPasswordService(mockReader, mockWriter, nil, nil)

		err := svc.ResetPassword(context.Background(), "badkey", "new-password")
		assert.ErrorIs(t, err, services.ErrResetKeyInvalid)
	})
}

func TestPasswordService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	oldPassword := "old-password"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(oldPassword), bcrypt.DefaultCost)

	tests := []struct {
		name        string
		oldPassword string
		newPassword string
		setup       func(reader *services.MockResetUserReader, writer *services.MockResetUserWriter)
		wantErr     error
	}{
		{
			name:        "successful change",
			oldPassword: oldPassword,
			newPassword: "new-password",
			setup: func(reader *services.MockResetUserReader, writer *services.MockResetUserWriter) {
				reader.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, PasswordHash: string(hashed)}, nil)
				writer.EXPECT().
					UpdatePassword(gomock.Any(), userID, gomock.Any()).
					Return(nil)
			},
		},
		{
			name:        "wrong old password",
			oldPassword: "not-the-password",
			newPassword: "new-password",
			setup: func(reader *services.MockResetUserReader, writer *services.MockResetUserWriter) {
				reader.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, PasswordHash: string(hashed)}, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:        "weak new password",
			oldPassword: oldPassword,
			newPassword: "short",
			setup: func(reader *services.MockResetUserReader, writer *services.MockResetUserWriter) {
				reader.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, PasswordHash: string(hashed)}, nil)
			},
			wantErr: services.ErrWeakPassword,
		},
		{
			name:        "user not found",
			oldPassword: oldPassword,
			newPassword: "new-password",
			setup: func(reader *services.MockResetUserReader, writer *services.MockResetUserWriter) {
				reader.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockResetUserReader(ctrl)
			mockWriter := services.NewMockResetUserWriter(ctrl)
			tt.setup(mockReader, mockWriter)

			svc := services.NewPasswordService(mockReader, mockWriter, nil, nil)

			err := svc.ChangePassword(context.Background(), userID, tt.oldPassword, tt.newPassword)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPasswordService_ResetPublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	future := time.Now().Add(30 * time.Minute)

	mockReader := services.NewMockResetUserReader(ctrl)
	mockWriter := services.NewMockResetUserWriter(ctrl)
	mockEvents := services.NewMockKafkaWriter(ctrl)

	mockReader.EXPECT().
		GetByResetKey(gomock.Any(), "goodkey").
		Return(&models.UserDB{UserID: userID, Email: "alice@example.com", ResetKeyExpiresAt: &future}, nil)
	mockWriter.EXPECT().
		UpdatePassword(gomock.Any(), userID, gomock.Any()).
		Return(nil)
	mockWriter.EXPECT().
		ClearResetKey(gomock.Any(), userID).
		Return(nil)
	mockEvents.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := services.NewPasswordService(mockReader, mockWriter, nil, mockEvents)

	err := svc.ResetPassword(context.Background(), "goodkey", "new-password")
	assert.NoError(t, err)
}
