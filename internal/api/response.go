package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrymomot/authsvc/pkg/auth"
)

// envelope is the uniform response shape for all auth endpoints.
type envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	User    *userPayload `json:"user,omitempty"`
}

type userPayload struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt,omitzero"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func newUserPayload(u *auth.User) *userPayload {
	return &userPayload{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}
