// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionMechanism identifies which login mechanism produced a session record.
type SessionMechanism string

const (
	// MechanismEmail marks a session created via email/password login.
	MechanismEmail SessionMechanism = "email"
	// MechanismFederated marks a session created after verifying a federated provider token.
	MechanismFederated SessionMechanism = "federated"
)

// Session represents an opaque server-issued credential. Sessions have no TTL
// in this design: they are valid until explicit logout. Only a SHA-256 hash of
// the raw token is stored for comparison in the database.
//
// UserID is nil for a federated session created before onboarding: the provider
// principal is known but no local user row exists yet.
type Session struct {
	ID             uuid.UUID        // The unique ID for this session record.
	UserID         *uuid.UUID       // Links this session to the User it belongs to, if one exists.
	TokenHash      string           // SHA-256 hash of the raw opaque token.
	Mechanism      SessionMechanism // Which login mechanism created this session.
	FederatedUID   string           // The federated subject id, only set for federated sessions.
	FederatedEmail string           // The provider-reported email, only set for federated sessions.
	CreatedAt      time.Time        // Timestamp of when this session was created.
}
