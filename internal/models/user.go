package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID            uuid.UUID  `db:"user_id"`              // Primary key
	Username          string     `db:"username"`             // Unique username
	Email             string     `db:"email"`                // Unique email
	PasswordHash      string     `db:"password_hash"`        // bcrypt hash
	DisplayName       string     `db:"display_name"`         // Name shown to other users
	Age               *int       `db:"age"`                  // Optional age
	Banned            bool       `db:"banned"`               // Banned accounts cannot log in
	ResetKey          *string    `db:"reset_key"`            // Pending password-reset key, single use
	ResetKeyExpiresAt *time.Time `db:"reset_key_expires_at"` // Reset key expiry
	ProfilePictureURL *string    `db:"profile_picture_url"`  // Object-storage URL
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// User is the API representation of a user. Password and reset fields never leave the server.
type User struct {
	UserID            uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	DisplayName       string    `json:"displayName"`
	Age               *int      `json:"age,omitempty"`
	ProfilePictureURL *string   `json:"profilePictureUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ToUser converts a database record to its API representation.
func (u *UserDB) ToUser() *User {
	return &User{
		UserID:            u.UserID,
		Username:          u.Username,
		Email:             u.Email,
		DisplayName:       u.DisplayName,
		Age:               u.Age,
		ProfilePictureURL: u.ProfilePictureURL,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
