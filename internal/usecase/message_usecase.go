package usecase

import (
	"context"

	"homeroom/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput defines the data for one in-app message.
type SendMessageInput struct {
	RecipientID uuid.UUID
	Body        string
}

// MessageUsecase defines messaging operations between tutors, parents and students.
type MessageUsecase interface {
	SendMessage(ctx context.Context, actor *entity.User, input *SendMessageInput) (*entity.Message, error)
	ListConversation(ctx context.Context, actor *entity.User, otherUserID uuid.UUID) ([]*entity.Message, error)
	MarkMessageRead(ctx context.Context, actor *entity.User, messageID uuid.UUID) error
}
