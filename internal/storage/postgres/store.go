// Package postgres implements auth.UserStore on PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/authsvc/pkg/auth"
	"github.com/dmitrymomot/authsvc/pkg/pg"
)

// DB is the subset of pgxpool.Pool the store needs. pgxmock satisfies it
// too, which keeps the store testable without a live database.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserStore persists users and reset tokens in the users table.
type UserStore struct {
	db DB
}

var _ auth.UserStore = (*UserStore)(nil)

// NewUserStore creates a store backed by the given connection pool.
func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

// CreateUser inserts a new account and fills in the store-assigned ID and
// creation time. The unique index on email is the duplicate guard.
func (s *UserStore) CreateUser(ctx context.Context, user *auth.User, passwordHash []byte) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		user.Name, user.Email, passwordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return auth.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	var user auth.User
	err := s.db.QueryRow(ctx,
		`SELECT id, name, email, created_at, last_login
		 FROM users
		 WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.LastLogin)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	return &user, nil
}

func (s *UserStore) GetPasswordHash(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var hash []byte
	err := s.db.QueryRow(ctx,
		`SELECT password_hash FROM users WHERE id = $1`,
		id,
	).Scan(&hash)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("select password hash: %w", err)
	}
	return hash, nil
}

func (s *UserStore) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET last_login = $2 WHERE id = $1`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

// SetResetToken overwrites any previously issued token, so only the most
// recent token can be redeemed.
func (s *UserStore) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET reset_token = $2, reset_token_expiry = $3 WHERE id = $1`,
		id, token, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

// ConsumeResetToken matches an unexpired token, replaces the password hash,
// and clears the token columns in a single conditional update. The WHERE
// clause makes redemption atomic: concurrent attempts with the same token
// race on one row version and only one can win.
func (s *UserStore) ConsumeResetToken(ctx context.Context, token string, newPasswordHash []byte, asOf time.Time) (*auth.User, error) {
	var user auth.User
	err := s.db.QueryRow(ctx,
		`UPDATE users
		 SET password_hash = $2, reset_token = NULL, reset_token_expiry = NULL
		 WHERE reset_token = $1 AND reset_token_expiry > $3
		 RETURNING id, name, email, created_at, last_login`,
		token, newPasswordHash, asOf,
	).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.LastLogin)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrTokenNotFound
		}
		return nil, fmt.Errorf("consume reset token: %w", err)
	}
	return &user, nil
}
