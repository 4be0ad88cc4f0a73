package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authsvc/pkg/auth"
	"github.com/dmitrymomot/authsvc/pkg/binder"
	"github.com/dmitrymomot/authsvc/pkg/jwt"
	"github.com/dmitrymomot/authsvc/pkg/logger"
	"github.com/dmitrymomot/authsvc/pkg/validator"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*auth.User, error)
	Authenticate(ctx context.Context, email, password string) (*auth.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// Handler serves the authentication endpoints.
type Handler struct {
	auth AuthService
	jwt  *jwt.Service
	log  *slog.Logger
}

// HandlerOption configures the handler.
type HandlerOption func(*Handler)

// WithLogger sets a custom logger for the handler.
func WithLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// NewHandler wires the auth service and the session token issuer.
func NewHandler(svc AuthService, tokens *jwt.Service, opts ...HandlerOption) *Handler {
	h := &Handler{
		auth: svc,
		jwt:  tokens,
		log:  logger.Noop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a session token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := binder.BindJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
			return
		}
		h.serverError(w, r, err)
		return
	}

	token, err := h.jwt.Generate(user.ID.String(), user.Name, user.Email)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "login successful",
		Token:   token,
		User:    newUserPayload(user),
	})
}

// Register creates an account and issues a session token so the caller is
// signed in immediately.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := binder.BindJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			writeError(w, http.StatusBadRequest, verrs.Error())
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			writeError(w, http.StatusConflict, auth.ErrEmailAlreadyExists.Error())
		default:
			h.serverError(w, r, err)
		}
		return
	}

	token, err := h.jwt.Generate(user.ID.String(), user.Name, user.Email)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "registration successful",
		Token:   token,
		User:    newUserPayload(user),
	})
}

// ForgotPassword starts the recovery flow. The response is identical for
// known and unknown emails.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := binder.BindJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.auth.RequestPasswordReset(r.Context(), req.Email); err != nil {
		h.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "if the email exists, a reset link has been sent",
	})
}

// ResetPassword redeems a reset token and sets a new password.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := binder.BindJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.auth.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			writeError(w, http.StatusBadRequest, verrs.Error())
		case errors.Is(err, auth.ErrInvalidOrExpiredToken):
			writeError(w, http.StatusBadRequest, auth.ErrInvalidOrExpiredToken.Error())
		default:
			h.serverError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "password has been reset",
	})
}

// Me returns the session identity carried by the verified token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwt.GetClaims(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing session")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "ok",
		User: &userPayload{
			ID:    claims.Subject,
			Name:  claims.Name,
			Email: claims.Email,
		},
	})
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		logger.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
