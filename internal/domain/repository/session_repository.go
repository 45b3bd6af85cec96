// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"homeroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session record matches the lookup.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines persistence for opaque login sessions.
// A session row exists from login until explicit logout; there is no TTL.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by the SHA-256 hash of its raw token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a session by token hash, ending it. Deleting a
	// session that does not exist is not an error (logout is idempotent).
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID removes all sessions for a user (e.g. after a password reset).
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
