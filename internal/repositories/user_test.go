package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func userRows(userID uuid.UUID, username, email string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"user_id", "username", "email", "password_hash", "display_name", "age", "banned",
		"reset_key", "reset_key_expires_at", "profile_picture_url", "created_at", "updated_at",
	}).AddRow(userID, username, email, "hash", "Display", nil, false, nil, nil, nil, now, now)
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	username := "alice"
	email := "alice@example.com"

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE (.+)").
			WithArgs(&username, &email).
			WillReturnRows(userRows(userID, username, email))

		user, err := repo.GetByUsernameOrEmail(ctx, &username, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE (.+)").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		user, err := repo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE (.+)").
			WillReturnError(errors.New("connection refused"))

		user, err := repo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id").
		WithArgs(userID).
		WillReturnRows(userRows(userID, "bob", "bob@example.com"))

	user, err := repo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "bob", user.Username)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	user, err = repo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByResetKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE reset_key").
		WithArgs("deadbeef").
		WillReturnRows(userRows(userID, "carol", "carol@example.com"))

	user, err := repo.GetByResetKey(ctx, "deadbeef")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, userID, user.UserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	mock.ExpectQuery("INSERT INTO users (.+) RETURNING").
		WithArgs("dave", "dave@example.com", "hash", "Dave").
		WillReturnRows(userRows(userID, "dave", "dave@example.com"))

	user, err := repo.Save(ctx, "dave", "dave@example.com", "hash", "Dave")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, userID, user.UserID)

	mock.ExpectQuery("INSERT INTO users (.+) RETURNING").
		WillReturnError(errors.New("duplicate key value violates unique constraint"))

	user, err = repo.Save(ctx, "dave", "dave@example.com", "hash", "Dave")
	assert.Error(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_ResetKeyLifecycle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	mock.ExpectExec("UPDATE users SET reset_key = (.+), reset_key_expires_at = (.+)").
		WithArgs(userID, "cafebabe", expiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetResetKey(ctx, userID, "cafebabe", expiresAt))

	mock.ExpectExec("UPDATE users SET reset_key = NULL, reset_key_expires_at = NULL").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.ClearResetKey(ctx, userID))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Updates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	age := 30

	mock.ExpectExec("UPDATE users SET email").
		WithArgs(userID, "new@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdateEmail(ctx, userID, "new@example.com"))

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs(userID, "newhash").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdatePassword(ctx, userID, "newhash"))

	mock.ExpectExec("UPDATE users SET display_name").
		WithArgs(userID, "New Name", &age).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdateProfile(ctx, userID, "New Name", &age))

	mock.ExpectExec("UPDATE users SET profile_picture_url").
		WithArgs(userID, "https://cdn.example.com/p.jpg").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdateProfilePicture(ctx, userID, "https://cdn.example.com/p.jpg"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
