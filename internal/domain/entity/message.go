// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two platform users (e.g. tutor and parent).
type Message struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Body        string
	ReadAt      *time.Time // nil until the recipient marks the message read.
	CreatedAt   time.Time
}
