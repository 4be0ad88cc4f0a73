package jwt

import "errors"

var (
	ErrMissingSigningKey       = errors.New("jwt: missing signing key")
	ErrSigningFailed           = errors.New("jwt: failed to sign token")
	ErrInvalidToken            = errors.New("jwt: invalid token")
	ErrExpiredToken            = errors.New("jwt: token is expired")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
)
