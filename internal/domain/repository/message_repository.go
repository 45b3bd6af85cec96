// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"homeroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the standard operations for message persistence.
type MessageRepository interface {
	// FindByID retrieves a single message by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// ListConversation retrieves all messages exchanged between two users, oldest first.
	ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entity.Message, error)

	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// MarkRead stamps the message's read time.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
