package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so login failures do not leak which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)
