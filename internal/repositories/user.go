package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/models"
)

// UserReadRepository provides read access to the users table.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `
	user_id, username, email, password_hash, display_name, age, banned,
	reset_key, reset_key_expires_at, profile_picture_url, created_at, updated_at
`

// GetByUsernameOrEmail finds a user matching the given username and/or email.
// A nil argument skips that condition. Returns (nil, nil) when no row matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Infow("user select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or (nil, nil) when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("user select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail returns the user with the given email, or (nil, nil) when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByResetKey returns the user holding the given reset key, or (nil, nil).
func (r *UserReadRepository) GetByResetKey(ctx context.Context, resetKey string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE reset_key = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, resetKey)

	logger.Log.Infow("user select",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository provides write access to the users table.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored row.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash, displayName string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, display_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email, passwordHash, displayName)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email, displayName},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateEmail changes the user's email address.
func (r *UserWriteRepository) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error {
	const query = `UPDATE users SET email = $2, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, userID, email)
}

// UpdatePassword replaces the stored password hash.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, userID, passwordHash)
}

// SetResetKey stores a pending password-reset key and its expiry on the user row.
func (r *UserWriteRepository) SetResetKey(ctx context.Context, userID uuid.UUID, resetKey string, expiresAt time.Time) error {
	const query = `UPDATE users SET reset_key = $2, reset_key_expires_at = $3, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, userID, resetKey, expiresAt)
}

// ClearResetKey removes any pending reset key from the user row.
func (r *UserWriteRepository) ClearResetKey(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET reset_key = NULL, reset_key_expires_at = NULL, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, userID)
}

// UpdateProfile changes display name and age.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, displayName string, age *int) error {
	const query = `UPDATE users SET display_name = $2, age = $3, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, userID, displayName, age)
}

// UpdateProfilePicture stores the object-storage URL of the profile picture.
func (r *UserWriteRepository) UpdateProfilePicture(ctx context.Context, userID uuid.UUID, url string) error {
	const query = `UPDATE users SET profile_picture_url = $2, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, userID, url)
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user update",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", rowsAffected,
		"error", err,
	)

	return err
}
