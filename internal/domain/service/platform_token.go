package service

import "github.com/google/uuid"

// PlatformPrincipal is the trusted principal attached by the hosting
// platform's built-in auth layer, distinct from the app's own sessions.
type PlatformPrincipal struct {
	UserID uuid.UUID // The bound local user id from the assertion's subject.
}

// PlatformTokenVerifier verifies the platform-native session assertion
// (a signed JWT the platform attaches to proxied requests).
type PlatformTokenVerifier interface {
	// Verify checks the assertion's signature, issuer and expiry, returning
	// the principal it carries.
	Verify(assertion string) (*PlatformPrincipal, error)
}
