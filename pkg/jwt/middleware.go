package jwt

import (
	"net/http"
	"strings"
)

// TokenExtractorFunc extracts a token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// MiddlewareConfig configures token verification middleware.
type MiddlewareConfig struct {
	Service   *Service
	Extractor TokenExtractorFunc                         // defaults to Bearer header extraction
	OnError   func(w http.ResponseWriter, r *http.Request) // defaults to a plain 401
}

// Middleware verifies the session token on every request and injects the
// resolved claims into the request context. A caller presenting a correctly
// signed, unexpired token is trusted unconditionally.
func Middleware(service *Service) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Service: service})
}

// MiddlewareWithConfig is Middleware with a custom extractor or error hook.
func MiddlewareWithConfig(cfg MiddlewareConfig) func(next http.Handler) http.Handler {
	if cfg.Extractor == nil {
		cfg.Extractor = BearerTokenExtractor
	}
	if cfg.OnError == nil {
		cfg.OnError = func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := cfg.Extractor(r)
			if err != nil {
				cfg.OnError(w, r)
				return
			}

			claims, err := cfg.Service.Parse(tokenString)
			if err != nil {
				cfg.OnError(w, r)
				return
			}

			ctx := SetToken(r.Context(), tokenString)
			ctx = SetClaims(ctx, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerTokenExtractor reads "Authorization: Bearer <token>" headers.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}

// CookieTokenExtractor reads the token from a named cookie, for browser
// clients that cannot set Authorization headers.
func CookieTokenExtractor(cookieName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil {
			return "", ErrInvalidToken
		}
		return cookie.Value, nil
	}
}
