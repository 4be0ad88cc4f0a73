package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// resetTokenBytes is the entropy behind every reset token. 32 bytes makes
// brute-forcing a live token within its one-hour window a non-concern.
const resetTokenBytes = 32

// newResetToken returns a URL-safe opaque secret. The token carries no
// structure at all: owner and expiry live only on the user record it will be
// matched against.
func newResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
