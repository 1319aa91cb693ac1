package services

import "errors"

// Error variables shared across services. Handlers map these to HTTP status
// codes; anything else is an internal failure.
var (
	ErrUserAlreadyExists  = errors.New("email or username already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrResetKeyInvalid    = errors.New("invalid reset key")
	ErrResetKeyExpired    = errors.New("reset key expired")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageUnavailable = errors.New("object storage is not configured")
)
