package service

import "context"

// Mailer delivers transactional mail (verification and password reset links).
type Mailer interface {
	// SendVerificationMail sends the email-verification link for the given token.
	SendVerificationMail(ctx context.Context, to, name, token string) error

	// SendPasswordResetMail sends the password-reset link for the given token.
	SendPasswordResetMail(ctx context.Context, to, name, token string) error
}
