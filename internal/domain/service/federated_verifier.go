package service

import "context"

// FederatedPrincipal represents the verified identity asserted by the
// federated identity provider (Firebase Auth).
type FederatedPrincipal struct {
	UID           string // Provider subject id.
	Email         string
	Name          string
	PhotoURL      string
	EmailVerified bool
}

// FederatedVerifier verifies federated-provider ID tokens.
//
// Implementations must distinguish a token that fails verification from the
// provider being unreachable: the former maps to an invalid-credential
// outcome, the latter to UpstreamUnavailable.
type FederatedVerifier interface {
	// VerifyIDToken verifies a provider-signed ID token and returns the principal it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*FederatedPrincipal, error)
}
