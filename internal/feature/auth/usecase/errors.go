// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by mobile number or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the mobile number is already registered.
	ErrUserAlreadyExists = errors.New("mobile number already registered")

	// ErrInvalidCredentials is returned for any failed login. It never says which part was wrong.
	ErrInvalidCredentials = errors.New("invalid mobile number or password")

	// ErrInvalidInput is returned when a mobile number or password fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSelfDeleteForbidden is returned when an admin tries to delete their own account.
	ErrSelfDeleteForbidden = errors.New("cannot delete your own account")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionRevoked is returned when attempting to use a revoked session.
	ErrSessionRevoked = errors.New("session has been revoked")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")

	// ErrInvalidRefreshToken is returned when a refresh token is invalid or malformed.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
