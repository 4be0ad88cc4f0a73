package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity as seen outside the store boundary. The password
// hash and reset-token state deliberately do not appear here: they live in
// the store and travel only through dedicated UserStore methods, so no caller
// of the service can ever read them.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	LastLogin *time.Time
}
