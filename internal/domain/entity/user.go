// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// The Credential Store exclusively owns this row; the identity resolver only reads it.
type User struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email         string     // The user's primary contact email, used as the login identifier.
	Name          string     // The user's display name.
	PhotoURL      string     // Optional avatar URL supplied by the federated provider.
	PasswordHash  string     // bcrypt hash; empty for accounts created through federated sign-in only.
	EmailVerified bool       // Whether the email address has been confirmed.
	Role          *Role      // nil until onboarding assigns a role.
	ParentID      *uuid.UUID // For student accounts, the linked parent account; nil otherwise.
	FederatedUID  string     // The federated provider's subject id; empty for email-only accounts.
	CreatedAt     time.Time  // Timestamp of when this account was created.
	UpdatedAt     time.Time  // Timestamp of the last modification.

	// Single-use, time-bounded secrets. A token past its expiry is treated as
	// absent regardless of whether the cleanup sweep has purged it yet.
	VerificationToken        string
	VerificationTokenExpiry  *time.Time
	PasswordResetToken       string
	PasswordResetTokenExpiry *time.Time
}

// HasRole reports whether onboarding has assigned a role to this user.
func (u *User) HasRole() bool {
	return u.Role != nil
}

// VerificationTokenValid reports whether the verification token matches and
// has not expired as of now. Expiry is checked at use time, never delegated
// to the cleanup sweep.
func (u *User) VerificationTokenValid(token string, now time.Time) bool {
	if u.VerificationToken == "" || u.VerificationToken != token {
		return false
	}

	return u.VerificationTokenExpiry != nil && u.VerificationTokenExpiry.After(now)
}

// PasswordResetTokenValid reports whether the reset token matches and has not expired.
func (u *User) PasswordResetTokenValid(token string, now time.Time) bool {
	if u.PasswordResetToken == "" || u.PasswordResetToken != token {
		return false
	}

	return u.PasswordResetTokenExpiry != nil && u.PasswordResetTokenExpiry.After(now)
}
