package auth

import "errors"

// Domain outcomes. These are expected business results, recovered at the
// service boundary and rendered as structured responses, never panics.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyExists is returned when registering an email that is
	// already taken, whether caught by the service-level check or by the
	// store's uniqueness constraint.
	ErrEmailAlreadyExists = errors.New("email already in use")

	// ErrInvalidOrExpiredToken covers wrong, expired, and already-consumed
	// reset tokens without distinguishing them, to avoid leaking
	// token-guessing feedback.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
)

// Store-level sentinels implemented by UserStore implementations.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrTokenNotFound = errors.New("reset token not found or expired")
)
