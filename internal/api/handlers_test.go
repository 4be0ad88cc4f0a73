package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authsvc/pkg/auth"
	"github.com/dmitrymomot/authsvc/pkg/jwt"
	"github.com/dmitrymomot/authsvc/pkg/validator"
)

const testSecret = "test-secret-32-chars-long-123456"

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*auth.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*auth.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

func newTestRouter(t *testing.T, svc AuthService) (http.Handler, *jwt.Service) {
	t.Helper()
	tokens, err := jwt.New(testSecret)
	require.NoError(t, err)
	h := NewHandler(svc, tokens)
	return NewRouter(h, tokens, RouterConfig{}), tokens
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func testUser() *auth.User {
	now := time.Now()
	return &auth.User{
		ID:        uuid.New(),
		Name:      "Jane",
		Email:     "jane@example.com",
		CreatedAt: now.Add(-24 * time.Hour),
		LastLogin: &now,
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("returns token and user", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, tokens := newTestRouter(t, svc)
		user := testUser()

		svc.On("Authenticate", mock.Anything, "jane@example.com", "secret1").Return(user, nil)

		rec := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"jane@example.com","password":"secret1"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		require.NotEmpty(t, env.Token)
		require.NotNil(t, env.User)
		assert.Equal(t, user.ID.String(), env.User.ID)

		claims, err := tokens.Parse(env.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.Subject)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("invalid credentials return 401", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, _ := newTestRouter(t, svc)

		svc.On("Authenticate", mock.Anything, "jane@example.com", "wrong").
			Return(nil, auth.ErrInvalidCredentials)

		rec := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"jane@example.com","password":"wrong"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Empty(t, env.Token)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, _ := newTestRouter(t, svc)

		rec := doJSON(t, router, http.MethodPost, "/auth/login", `{"email":`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unexpected failure returns 500 without details", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, _ := newTestRouter(t, svc)

		svc.On("Authenticate", mock.Anything, "jane@example.com", "secret1").
			Return(nil, errors.New("pool exhausted"))

		rec := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"jane@example.com","password":"secret1"}`, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pool exhausted")
	})
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates account and signs in", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, _ := newTestRouter(t, svc)
		user := testUser()
		user.LastLogin = nil

		svc.On("Register", mock.Anything, "Jane", "jane@example.com", "secret1").Return(user, nil)

		rec := doJSON(t, router, http.MethodPost, "/auth/register",
			`{"name":"Jane","email":"jane@example.com","password":"secret1"}`, nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		assert.NotEmpty(t, env.Token)
		require.NotNil(t, env.User)
		assert.Nil(t, env.User.LastLogin)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, _ := newTestRouter(t, svc)

		svc.On("Register", mock.Anything, "Jane", "jane@example.com", "secret1").
			Return(nil, auth.ErrEmailAlreadyExists)

		rec := doJSON(t, router, http.MethodPost, "/auth/register",
			`{"name":"Jane","email":"jane@example.com","password":"secret1"}`, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("validation failure returns 400 with field messages", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, _ := newTestRouter(t, svc)

		verrs := validator.ValidationErrors{
			{Field: "password", Message: "must be at least 6 characters"},
		}
		svc.On("Register", mock.Anything, "Jane", "jane@example.com", "short").
			Return(nil, verrs)

		rec := doJSON(t, router, http.MethodPost, "/auth/register",
			`{"name":"Jane","email":"jane@example.com","password":"short"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "at least 6 characters")
	})
}

func TestHandler_ForgotPassword(t *testing.T) {
	t.Parallel()

	t.Run("always reports success", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, _ := newTestRouter(t, svc)

		svc.On("RequestPasswordReset", mock.Anything, "whoever@example.com").Return(nil)

		rec := doJSON(t, router, http.MethodPost, "/auth/forgot-password",
			`{"email":"whoever@example.com"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
	})

	t.Run("storage failure returns 500", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, _ := newTestRouter(t, svc)

		svc.On("RequestPasswordReset", mock.Anything, "jane@example.com").
			Return(errors.New("db down"))

		rec := doJSON(t, router, http.MethodPost, "/auth/forgot-password",
			`{"email":"jane@example.com"}`, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_ResetPassword(t *testing.T) {
	t.Parallel()

	t.Run("resets with valid token", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, _ := newTestRouter(t, svc)

		svc.On("ResetPassword", mock.Anything, "the-token", "new-secret").Return(nil)

		rec := doJSON(t, router, http.MethodPost, "/auth/reset-password",
			`{"token":"the-token","password":"new-secret"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
	})

	t.Run("invalid token returns 400", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, _ := newTestRouter(t, svc)

		svc.On("ResetPassword", mock.Anything, "bogus", "new-secret").
			Return(auth.ErrInvalidOrExpiredToken)

		rec := doJSON(t, router, http.MethodPost, "/auth/reset-password",
			`{"token":"bogus","password":"new-secret"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid or expired")
	})
}

func TestHandler_Me(t *testing.T) {
	t.Parallel()

	t.Run("returns identity from token", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, tokens := newTestRouter(t, svc)
		user := testUser()

		token, err := tokens.Generate(user.ID.String(), user.Name, user.Email)
		require.NoError(t, err)

		header := http.Header{}
		header.Set("Authorization", "Bearer "+token)
		rec := doJSON(t, router, http.MethodGet, "/auth/me", "", header)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.User)
		assert.Equal(t, user.ID.String(), env.User.ID)
		assert.Equal(t, user.Name, env.User.Name)
		assert.Equal(t, user.Email, env.User.Email)
	})

	t.Run("rejects missing token", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, _ := newTestRouter(t, svc)

		rec := doJSON(t, router, http.MethodGet, "/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		t.Parallel()

		svc := &MockAuthService{}
		router, tokens := newTestRouter(t, svc)

		token, err := tokens.Generate(uuid.NewString(), "Jane", "jane@example.com")
		require.NoError(t, err)

		header := http.Header{}
		header.Set("Authorization", "Bearer "+token+"x")
		rec := doJSON(t, router, http.MethodGet, "/auth/me", "", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
