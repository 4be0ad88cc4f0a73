package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the validity window embedded into issued tokens.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionClaims is the identity claim set carried by session tokens: the
// user id as subject plus display name and email. Validity is purely time-
// and signature-based; there is no revocation.
type SessionClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Service issues and verifies HS256 session tokens. The signing secret is
// loaded once at construction and never mutated afterwards.
type Service struct {
	signingKey []byte
	ttl        time.Duration
	issuer     string
	now        func() time.Time
}

// Option configures the token service.
type Option func(*Service)

// WithTTL overrides the token validity window.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithIssuer sets the iss claim on issued tokens.
func WithIssuer(issuer string) Option {
	return func(s *Service) {
		s.issuer = issuer
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

// New creates a session token service. An empty secret is a configuration
// error that must abort startup, so it is rejected here rather than on the
// first Generate call.
func New(secret string, opts ...Option) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: []byte(secret),
		ttl:        DefaultSessionTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate issues a signed session token for the given identity. It is a
// pure function of its arguments, the current time, and the signing secret.
func (s *Service) Generate(subject, name, email string) (string, error) {
	now := s.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Name:  name,
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Join(ErrSigningFailed, err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and returns the embedded claims. The
// signing method is pinned to HS256 to rule out algorithm confusion.
func (s *Service) Parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return s.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
