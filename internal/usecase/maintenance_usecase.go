package usecase

import "context"

// CleanupResult summarizes one sweep of the credential store.
type CleanupResult struct {
	UsersDeleted       int64
	ResetTokensCleared int64
}

// MaintenanceUsecase defines the periodic credential-store cleanup.
// Each sweep is independent and idempotent: correctness of token validation
// never depends on a sweep having run, since expiry is re-checked at use time.
type MaintenanceUsecase interface {
	// RunCleanup deletes unverified users whose verification token has expired
	// and clears expired password reset tokens without touching the user row.
	RunCleanup(ctx context.Context) (*CleanupResult, error)
}
