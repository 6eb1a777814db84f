package domain

import "errors"

var (
	ErrDuplicateUsername     = errors.New("username already taken")
	ErrUserNotFound          = errors.New("user not found")
	ErrAdvertisementNotFound = errors.New("advertisement not found")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUnauthorized          = errors.New("invalid or expired token")
	ErrForbidden             = errors.New("access forbidden")
)
