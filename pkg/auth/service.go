package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authsvc/pkg/logger"
	"github.com/dmitrymomot/authsvc/pkg/sanitizer"
	"github.com/dmitrymomot/authsvc/pkg/validator"
)

// MinPasswordLength is enforced on registration and password reset.
const MinPasswordLength = 6

// Service implements the credential lifecycle: verification, registration,
// and the two-phase reset-token state machine. It is stateless and safe for
// concurrent use; all mutable state lives in the UserStore.
type Service struct {
	store         UserStore
	mailer        ResetMailer
	logger        *slog.Logger
	bcryptCost    int
	resetTokenTTL time.Duration
	resetBaseURL  string
	mailTimeout   time.Duration
	now           func() time.Time
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// WithResetTokenTTL sets the validity window for reset tokens.
func WithResetTokenTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.resetTokenTTL = ttl
		}
	}
}

// WithResetBaseURL sets the frontend URL reset links point at. The raw token
// is appended as a `token` query parameter.
func WithResetBaseURL(u string) Option {
	return func(s *Service) {
		s.resetBaseURL = strings.TrimRight(u, "?&")
	}
}

// WithMailTimeout bounds the asynchronous delivery attempt.
func WithMailTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.mailTimeout = d
		}
	}
}

// WithClock injects a time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates the authentication service with its two collaborators.
func NewService(store UserStore, mailer ResetMailer, opts ...Option) *Service {
	s := &Service{
		store:         store,
		mailer:        mailer,
		logger:        logger.Noop(),
		bcryptCost:    bcrypt.DefaultCost,
		resetTokenTTL: 1 * time.Hour,
		resetBaseURL:  "http://localhost:5173",
		mailTimeout:   10 * time.Second,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a new account and returns it. The store's unique email
// constraint is the authoritative duplicate guard; the lookup here only
// gives a friendlier fast path.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = sanitizer.NormalizeEmail(email)

	if err := validator.Apply(
		validator.Required("name", name),
		validator.MaxLen("name", name, 100),
		validator.ValidEmail("email", email),
		validator.MinLen("password", password, MinPasswordLength),
	); err != nil {
		return nil, err
	}

	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Name:  name,
		Email: email,
	}
	if err := s.store.CreateUser(ctx, user, hash); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			// Lost a race with a concurrent registration; same outcome as
			// the fast-path check above.
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		logger.UserID(user.ID.String()),
		logger.Component("auth"),
	)

	return user, nil
}

// Authenticate verifies email and password. Unknown email and wrong password
// are observationally identical: both return ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	hash, err := s.store.GetPasswordHash(ctx, user.ID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Recording the login is best-effort: the password has already been
	// verified, so a failed durability update must not fail the login.
	now := s.now()
	if err := s.store.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("failed to record last login",
			logger.UserID(user.ID.String()),
			logger.Error(err),
			logger.Component("auth"),
		)
	} else {
		user.LastLogin = &now
	}

	return user, nil
}

// RequestPasswordReset starts recovery phase one. It never reveals whether
// the email exists: unknown addresses return nil just like known ones.
// Issuing a new token silently invalidates any earlier one for the user, so
// at most one reset token is outstanding at any time.
//
// The token is committed before delivery is attempted, and delivery runs
// asynchronously: a failed send leaves the token valid and is only logged,
// since the caller-visible outcome must not depend on delivery either way.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	email = sanitizer.NormalizeEmail(email)

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.logger.Debug("password reset requested for unknown email",
				slog.String("email", sanitizer.MaskEmail(email)),
				logger.Component("auth"),
			)
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	token, err := newResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.store.SetResetToken(ctx, user.ID, token, s.now().Add(s.resetTokenTTL)); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := s.resetBaseURL + "?token=" + token

	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("password reset mail delivery panicked",
					logger.UserID(user.ID.String()),
					slog.Any("panic", r),
					logger.Component("auth"),
				)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.mailTimeout)
		defer cancel()

		if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, user.Name, resetLink); err != nil {
			s.logger.Error("failed to deliver password reset email",
				logger.UserID(user.ID.String()),
				logger.Error(err),
				logger.Component("auth"),
			)
		}
	}()

	return nil
}

// ResetPassword completes recovery phase two. Matching an unexpired token,
// overwriting the hash, and clearing the token happen in one conditional
// store update, which is what makes the token single-use.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validator.Apply(
		validator.Required("token", token),
		validator.MinLen("password", newPassword, MinPasswordLength),
	); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.ConsumeResetToken(ctx, token, hash, s.now())
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("failed to consume reset token: %w", err)
	}

	s.logger.Info("password reset completed",
		logger.UserID(user.ID.String()),
		logger.Component("auth"),
	)

	return nil
}
