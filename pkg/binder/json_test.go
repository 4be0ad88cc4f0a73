package binder_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authsvc/pkg/binder"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes valid payload", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")

		var p loginPayload
		require.NoError(t, binder.BindJSON(req, &p))
		assert.Equal(t, "a@b.co", p.Email)
		assert.Equal(t, "secret1", p.Password)
	})

	t.Run("accepts charset parameter", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		var p loginPayload
		assert.NoError(t, binder.BindJSON(req, &p))
	})

	t.Run("rejects missing content type", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))

		var p loginPayload
		assert.ErrorIs(t, binder.BindJSON(req, &p), binder.ErrMissingContentType)
	})

	t.Run("rejects wrong content type", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "text/plain")

		var p loginPayload
		assert.ErrorIs(t, binder.BindJSON(req, &p), binder.ErrInvalidContentType)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/json")

		var p loginPayload
		assert.ErrorIs(t, binder.BindJSON(req, &p), binder.ErrEmptyRequestBody)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co","pasword":"typo"}`))
		req.Header.Set("Content-Type", "application/json")

		var p loginPayload
		assert.ErrorIs(t, binder.BindJSON(req, &p), binder.ErrFailedToParseJSON)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":`))
		req.Header.Set("Content-Type", "application/json")

		var p loginPayload
		assert.ErrorIs(t, binder.BindJSON(req, &p), binder.ErrFailedToParseJSON)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/", strings.NewReader(`{}{}`))
		req.Header.Set("Content-Type", "application/json")

		var p loginPayload
		assert.ErrorIs(t, binder.BindJSON(req, &p), binder.ErrFailedToParseJSON)
	})
}
