package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash, displayName string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
	events KafkaWriter
}

// NewAuthService creates a new AuthService instance. The Kafka writer may be
// nil; event publishing then degrades to a log line.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator, events KafkaWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
		events: events,
	}
}

// Register creates a new account and issues a session token.
func (svc *AuthService) Register(ctx context.Context, username, email, password, displayName string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	displayName = strings.TrimSpace(displayName)

	if username == "" || email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}
	if len(password) < 8 {
		return nil, "", ErrWeakPassword
	}
	if displayName == "" {
		displayName = username
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Infow("registration conflict", "username", username, "email", email)
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword), displayName)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	publishAuthEvent(ctx, svc.events, models.EventUserRegistered, user.UserID, user.Email)

	return user.ToUser(), token, nil
}

// Login authenticates a user and issues a session token. Unknown email,
// banned account and wrong password all collapse into ErrInvalidCredentials
// so the response never reveals which check failed.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Infow("login attempt for unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if user.Banned {
		logger.Log.Infow("login attempt for banned account", "user_id", user.UserID)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login password mismatch", "user_id", user.UserID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user.ToUser(), token, nil
}
