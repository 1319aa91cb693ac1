package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/models"
)

// Reset key parameters: 32 random bytes hex-encoded, valid for one hour,
// single use.
const (
	resetKeyBytes = 32
	resetKeyTTL   = time.Hour
)

// ResetUserReader defines the read operations the password flows need.
type ResetUserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByResetKey(ctx context.Context, resetKey string) (*models.UserDB, error)
}

// ResetUserWriter defines the write operations the password flows need.
type ResetUserWriter interface {
	SetResetKey(ctx context.Context, userID uuid.UUID, resetKey string, expiresAt time.Time) error
	ClearResetKey(ctx context.Context, userID uuid.UUID) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// ResetMailer delivers the reset link. Implementations are best-effort.
type ResetMailer interface {
	SendResetKey(ctx context.Context, to, key string) error
}

// PasswordService handles the forgot/reset/change password lifecycle.
type PasswordService struct {
	reader ResetUserReader
	writer ResetUserWriter
	mailer ResetMailer
	events KafkaWriter
}

// NewPasswordService creates a new PasswordService. Mailer and Kafka writer
// may be nil.
func NewPasswordService(reader ResetUserReader, writer ResetUserWriter, mailer ResetMailer, events KafkaWriter) *PasswordService {
	return &PasswordService{
		reader: reader,
		writer: writer,
		mailer: mailer,
		events: events,
	}
}

// RequestReset issues a reset key for the given email. The caller always sees
// success so responses cannot be used to enumerate accounts.
func (svc *PasswordService) RequestReset(ctx context.Context, email string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to look up user for reset", "err", err)
		return err
	}
	if user == nil {
		// Same outcome as a match from the caller's perspective.
		logger.Log.Infow("reset requested for unknown email", "email", email)
		return nil
	}

	buf := make([]byte, resetKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		logger.Log.Errorw("failed to generate reset key", "err", err)
		return err
	}
	key := hex.EncodeToString(buf)
	expiresAt := time.Now().Add(resetKeyTTL)

	if err := svc.writer.SetResetKey(ctx, user.UserID, key, expiresAt); err != nil {
		logger.Log.Errorw("failed to persist reset key", "user_id", user.UserID, "err", err)
		return err
	}

	if svc.mailer != nil {
		// Delivery is best-effort: the key is already persisted and the
		// caller's response does not depend on the mail provider.
		if err := svc.mailer.SendResetKey(ctx, user.Email, key); err != nil {
			logger.Log.Errorw("failed to send reset email", "user_id", user.UserID, "err", err)
		}
	}

	publishAuthEvent(ctx, svc.events, models.EventPasswordResetRequested, user.UserID, user.Email)

	return nil
}

// resolveResetKey is the single path that turns a presented key into a user.
// Unknown keys fail as invalid; expired keys are cleared from the row and
// fail as expired. Both the verify and the consume endpoints go through here.
func (svc *PasswordService) resolveResetKey(ctx context.Context, key string) (*models.UserDB, error) {
	if key == "" {
		return nil, ErrResetKeyInvalid
	}

	user, err := svc.reader.GetByResetKey(ctx, key)
	if err != nil {
		logger.Log.Errorw("failed to look up reset key", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrResetKeyInvalid
	}

	if user.ResetKeyExpiresAt == nil || time.Now().After(*user.ResetKeyExpiresAt) {
		if err := svc.writer.ClearResetKey(ctx, user.UserID); err != nil {
			logger.Log.Errorw("failed to clear expired reset key", "user_id", user.UserID, "err", err)
		}
		return nil, ErrResetKeyExpired
	}

	return user, nil
}

// VerifyResetKey reports whether a reset key is currently valid.
func (svc *PasswordService) VerifyResetKey(ctx context.Context, key string) error {
	_, err := svc.resolveResetKey(ctx, key)
	return err
}

// ResetPassword consumes a reset key and sets a new password. The key is
// cleared on success, so a second attempt with the same key fails.
func (svc *PasswordService) ResetPassword(ctx context.Context, key, newPassword string) error {
	user, err := svc.resolveResetKey(ctx, key)
	if err != nil {
		return err
	}

	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, user.UserID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", user.UserID, "err", err)
		return err
	}

	if err := svc.writer.ClearResetKey(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to clear consumed reset key", "user_id", user.UserID, "err", err)
		return err
	}

	publishAuthEvent(ctx, svc.events, models.EventPasswordResetCompleted, user.UserID, user.Email)

	return nil
}

// ChangePassword sets a new password after verifying the old one. A wrong
// old password fails with the same generic error as a bad login.
func (svc *PasswordService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		logger.Log.Infow("change password old-password mismatch", "user_id", userID)
		return ErrInvalidCredentials
	}

	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.writer.UpdatePassword(ctx, userID, string(hashedPassword))
}
