// Package email handles outbound mail for the service.
//
// EmailSender is the delivery abstraction; two implementations are provided:
// a Postmark transactional client for production and a filesystem DevSender
// for local development. PasswordResetMailer sits on top of either and owns
// the password recovery template, exposing the narrow
// SendPasswordResetEmail(ctx, to, name, link) contract the auth service
// consumes.
package email
