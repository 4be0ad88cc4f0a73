package email

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

const resetSubject = "Password recovery"

// resetBodyTemplate is the transactional template for password recovery.
// It intentionally states the expiry window so a stale link explains itself.
var resetBodyTemplate = template.Must(template.New("password_reset").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Password recovery</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h2 style="color: #4f46e5;">Password recovery</h2>
		<p>Hello {{.Name}},</p>
		<p>You requested a password reset. Click the link below to choose a new password:</p>
		<p style="margin: 30px 0;">
			<a href="{{.ResetLink}}" style="background-color: #4f46e5; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">
				Reset password
			</a>
		</p>
		<p><strong>This link expires in {{.ExpiresIn}}.</strong></p>
		<p>If you did not request this, you can safely ignore this email.</p>
	</div>
</body>
</html>`))

// PasswordResetMailer composes and delivers password recovery emails through
// any EmailSender. It satisfies the mailer collaborator the auth service
// depends on.
type PasswordResetMailer struct {
	sender    EmailSender
	expiresIn string
}

// ResetMailerOption configures the mailer.
type ResetMailerOption func(*PasswordResetMailer)

// WithExpiryNotice overrides the human-readable expiry window shown in the
// email body. It must match the configured reset-token TTL.
func WithExpiryNotice(notice string) ResetMailerOption {
	return func(m *PasswordResetMailer) {
		if notice != "" {
			m.expiresIn = notice
		}
	}
}

// NewPasswordResetMailer creates a reset mail composer on top of sender.
func NewPasswordResetMailer(sender EmailSender, opts ...ResetMailerOption) *PasswordResetMailer {
	m := &PasswordResetMailer{
		sender:    sender,
		expiresIn: "1 hour",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SendPasswordResetEmail renders the recovery template and delivers it. The
// raw token only ever travels inside the reset link.
func (m *PasswordResetMailer) SendPasswordResetEmail(ctx context.Context, toAddress, displayName, resetLink string) error {
	if resetLink == "" {
		return fmt.Errorf("%w: reset link is required", ErrInvalidParams)
	}

	var body strings.Builder
	err := resetBodyTemplate.Execute(&body, struct {
		Name      string
		ResetLink string
		ExpiresIn string
	}{
		Name:      displayName,
		ResetLink: resetLink,
		ExpiresIn: m.expiresIn,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	return m.sender.SendEmail(ctx, SendEmailParams{
		SendTo:   toAddress,
		Subject:  resetSubject,
		BodyHTML: body.String(),
		Tag:      "password-reset",
	})
}
