package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore is the persistence collaborator. It is the single source of
// truth and the only shared mutable resource; the service itself holds no
// state. Implementations must enforce email uniqueness — the service-level
// duplicate check is an optimization only.
type UserStore interface {
	// CreateUser inserts the user together with its password hash in one
	// atomic operation, assigning ID and CreatedAt on the way in. Returns
	// ErrEmailAlreadyExists on a uniqueness violation.
	CreateUser(ctx context.Context, user *User, passwordHash []byte) error

	// GetUserByEmail returns ErrUserNotFound when no user matches.
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetPasswordHash returns the stored hash for the user, or
	// ErrUserNotFound.
	GetPasswordHash(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// UpdateLastLogin records a successful login timestamp.
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error

	// SetResetToken stores a new reset token and its expiry, silently
	// replacing any previously issued token for the user.
	SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error

	// ConsumeResetToken atomically matches an unexpired token, overwrites
	// the password hash, and clears both token fields in the same update,
	// so a token can never be used twice. Returns ErrTokenNotFound when
	// nothing matched (wrong, expired, or already consumed).
	ConsumeResetToken(ctx context.Context, token string, newPasswordHash []byte, asOf time.Time) (*User, error)
}

// ResetMailer delivers password recovery mail. Delivery failure never
// changes the outcome of a reset request; it is only logged.
type ResetMailer interface {
	SendPasswordResetEmail(ctx context.Context, toAddress, displayName, resetLink string) error
}
