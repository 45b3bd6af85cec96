package impl

import (
	"context"
	"log/slog"

	deliverycontext "homeroom/internal/delivery/context"
	"homeroom/internal/domain/entity"
	domainerrors "homeroom/internal/domain/errors"
	"homeroom/internal/domain/repository"
	"homeroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage delivers a message from the actor to another user.
func (srv *messageService) SendMessage(ctx context.Context, actor *entity.User, input *usecase.SendMessageInput) (*entity.Message, error) {
	if input.Body == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "message body is empty")
	}
	if input.RecipientID == actor.ID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cannot message yourself")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.RecipientID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "recipient not found")
		}

		return nil, errors.Wrap(err, "failed to load recipient")
	}

	message := &entity.Message{
		SenderID:    actor.ID,
		RecipientID: input.RecipientID,
		Body:        input.Body,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to send message", slog.Any("senderID", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create message")
	}

	return message, nil
}

// ListConversation returns the full exchange between the actor and one other user.
func (srv *messageService) ListConversation(ctx context.Context, actor *entity.User, otherUserID uuid.UUID) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.ListConversation(ctx, actor.ID, otherUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	return messages, nil
}

// MarkMessageRead stamps a message read. Only the recipient may do so.
func (srv *messageService) MarkMessageRead(ctx context.Context, actor *entity.User, messageID uuid.UUID) error {
	message, err := srv.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.Wrap(domainerrors.ErrMessageNotFound, "message not found")
		}

		return errors.Wrap(err, "failed to load message")
	}

	if message.RecipientID != actor.ID {
		return errors.Wrap(domainerrors.ErrForbidden, "only the recipient marks a message read")
	}

	if err := srv.messageRepo.MarkRead(ctx, messageID); err != nil {
		return errors.Wrap(err, "failed to mark message read")
	}

	return nil
}
