// Package api exposes the authentication service over HTTP with JSON
// request and response bodies.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/authsvc/pkg/httpserver"
	"github.com/dmitrymomot/authsvc/pkg/jwt"
)

// RouterConfig carries everything the router mounts besides the handler.
type RouterConfig struct {
	Logger       *slog.Logger
	HealthChecks []func(context.Context) error
}

// NewRouter builds the chi router: public credential endpoints, the
// token-protected identity endpoint, and the health probe.
func NewRouter(h *Handler, tokens *jwt.Service, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/forgot-password", h.ForgotPassword)
		r.Post("/reset-password", h.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(jwt.Middleware(tokens))
			r.Get("/me", h.Me)
		})
	})

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	r.Get("/health", httpserver.HealthCheckHandler(context.Background(), log, cfg.HealthChecks...))

	return r
}
