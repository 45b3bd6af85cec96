// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"homeroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByFederatedUID retrieves a single user by the federated provider's subject id.
	FindByFederatedUID(ctx context.Context, uid string) (*entity.User, error)

	// FindByVerificationToken retrieves the user holding the given verification token.
	// Expiry is NOT checked here; callers re-validate at use time.
	FindByVerificationToken(ctx context.Context, token string) (*entity.User, error)

	// FindByPasswordResetToken retrieves the user holding the given reset token.
	// Expiry is NOT checked here; callers re-validate at use time.
	FindByPasswordResetToken(ctx context.Context, token string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// DeleteExpiredUnverified removes users that never verified their email and
	// whose verification token expired before the given instant. Returns the
	// number of rows deleted.
	DeleteExpiredUnverified(ctx context.Context, now time.Time) (int64, error)

	// ClearExpiredPasswordResetTokens nulls expired reset tokens without
	// deleting the user rows. Returns the number of rows affected.
	ClearExpiredPasswordResetTokens(ctx context.Context, now time.Time) (int64, error)
}
