package usecase

import (
	"context"

	"homeroom/internal/domain/entity"
)

// ResolveSignals carries the raw credentials extracted from one request.
// Either field may be empty; the resolver treats an absent, malformed or
// stale signal identically.
type ResolveSignals struct {
	// PlatformAssertion is the signed assertion attached by the platform-native
	// auth layer, taken from the X-Platform-Assertion header.
	PlatformAssertion string

	// SessionToken is the opaque bearer token from the Authorization header.
	// It may name either an email/password session or a federated session.
	SessionToken string
}

// IdentityUsecase maps raw request signals to exactly one Identity variant.
//
// Resolution is total: for any combination of signal presence, validity and
// staleness exactly one Identity is produced. Lookup failures inside one
// mechanism are swallowed and resolution falls through to the next mechanism,
// so Resolve never returns an error.
type IdentityUsecase interface {
	Resolve(ctx context.Context, signals *ResolveSignals) entity.Identity
}
