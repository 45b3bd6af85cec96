// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// IdentityKind enumerates the possible outcomes of resolving "who is making
// this request" from the raw request signals.
type IdentityKind string

const (
	// IdentityUnauthenticated means no valid credential of any kind was presented.
	IdentityUnauthenticated IdentityKind = "unauthenticated"
	// IdentityFederatedPending means a valid federated-provider credential exists
	// but no corresponding local user row has been created yet (first sign-in).
	IdentityFederatedPending IdentityKind = "federated_pending"
	// IdentityLocalIncomplete means a local user row exists but its role is unset
	// (registration done, onboarding not).
	IdentityLocalIncomplete IdentityKind = "local_incomplete"
	// IdentityLocalComplete means a local user row exists with a role assigned.
	IdentityLocalComplete IdentityKind = "local_complete"
)

// Identity is the tagged union produced by the session resolver. For any
// combination of raw signals exactly one Identity is produced.
type Identity struct {
	Kind IdentityKind

	// User is set for LocalComplete and LocalIncomplete.
	User *User

	// FederatedUID and FederatedEmail are set for FederatedPending, carrying
	// the provider subject so that onboarding can create the local row.
	FederatedUID   string
	FederatedEmail string
}

// Unauthenticated returns the zero-credential identity.
func Unauthenticated() Identity {
	return Identity{Kind: IdentityUnauthenticated}
}

// FederatedPending returns an identity for a federated principal with no local row.
func FederatedPending(uid, email string) Identity {
	return Identity{Kind: IdentityFederatedPending, FederatedUID: uid, FederatedEmail: email}
}

// FromUser derives the identity variant for a resolved local user row:
// LocalComplete when a role is assigned, LocalIncomplete otherwise.
func FromUser(user *User) Identity {
	if user.HasRole() {
		return Identity{Kind: IdentityLocalComplete, User: user}
	}

	return Identity{Kind: IdentityLocalIncomplete, User: user}
}

// HasLocalUser reports whether some local row backs this identity.
// This is the admission condition of the auth gate.
func (i Identity) HasLocalUser() bool {
	return i.Kind == IdentityLocalComplete || i.Kind == IdentityLocalIncomplete
}

// UserID returns the bound user id, or uuid.Nil when no local row exists.
func (i Identity) UserID() uuid.UUID {
	if i.User == nil {
		return uuid.Nil
	}

	return i.User.ID
}
