// Package auth implements password-based account management: registration,
// credential verification, and a two-phase password recovery flow built on
// single-use expiring reset tokens.
//
// The package is transport-agnostic. It depends on two small interfaces, a
// UserStore for persistence and a ResetMailer for recovery email delivery,
// and returns sentinel errors the caller can map to its own responses.
//
// # Usage
//
//	svc := auth.NewService(store, mailer,
//		auth.WithLogger(log),
//		auth.WithResetTokenTTL(time.Hour),
//		auth.WithResetBaseURL("https://app.example.com/reset-password"),
//	)
//
//	user, err := svc.Authenticate(ctx, email, password)
//	if errors.Is(err, auth.ErrInvalidCredentials) {
//		// reject with a generic message
//	}
//
// # Security properties
//
// Authenticate does not distinguish unknown emails from wrong passwords, and
// RequestPasswordReset reports success for unknown emails, so neither
// operation can be used to enumerate accounts. Password hashes never leave
// the storage layer through this package's types: User carries no hash.
//
// Reset tokens are 32 bytes of crypto/rand output, carry no embedded
// structure, and are consumed atomically so a token can be redeemed at most
// once even under concurrent requests.
package auth
