// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"homeroom/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new email/password account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// EmailLoginInput defines the data required for an email/password login.
type EmailLoginInput struct {
	Email    string
	Password string
}

// FederatedLoginInput carries the identity provider's ID token.
type FederatedLoginInput struct {
	IDToken string
}

// CompleteOnboardingInput selects the role for a pending or incomplete
// account. Name and PhotoURL are only used when onboarding creates the local
// row for a federated principal. ParentEmail links a student account to an
// existing parent account and is ignored for other roles.
type CompleteOnboardingInput struct {
	Role        string
	Name        string
	PhotoURL    string
	ParentEmail string
}

// LogoutInput carries the session token to invalidate.
type LogoutInput struct {
	SessionToken string
}

// VerifyEmailInput carries the verification token from the mailed link.
type VerifyEmailInput struct {
	Token string
}

// ResendVerificationInput identifies the account whose verification mail to resend.
type ResendVerificationInput struct {
	Email string
}

// ForgotPasswordInput identifies the account requesting a password reset.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput carries the reset token and the new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	SessionToken string
	User         *entity.User
}

// FederatedLoginOutput returns the outcome of a federated login. When the
// provider account has no local user yet, User is nil, Pending is true and
// SessionToken still carries a federated session so the client can finish
// onboarding.
type FederatedLoginOutput struct {
	SessionToken string
	User         *entity.User
	Pending      bool
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	EmailLogin(ctx context.Context, input *EmailLoginInput) (*LoginOutput, error)
	FederatedLogin(ctx context.Context, input *FederatedLoginInput) (*FederatedLoginOutput, error)
	CompleteOnboarding(ctx context.Context, identity *entity.Identity, input *CompleteOnboardingInput) (*entity.User, error)
	Logout(ctx context.Context, input *LogoutInput) error
	VerifyEmail(ctx context.Context, input *VerifyEmailInput) error
	ResendVerification(ctx context.Context, input *ResendVerificationInput) error
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
