package impl

import (
	"context"
	"testing"
	"time"

	"homeroom/internal/domain/entity"
	domainerrors "homeroom/internal/domain/errors"
	"homeroom/internal/domain/repository"
	mockRepo "homeroom/internal/mocks/repository"
	"homeroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageMocks struct {
	messageRepo *mockRepo.MockMessageRepository
	userRepo    *mockRepo.MockUserRepository
}

func newMessageService(t *testing.T) (usecase.MessageUsecase, *messageMocks) {
	t.Helper()

	m := &messageMocks{
		messageRepo: mockRepo.NewMockMessageRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
	}

	svc := NewMessageService(MessageServiceParams{
		MessageRepo: m.messageRepo,
		UserRepo:    m.userRepo,
		Logger:      newDiscardLogger(),
	})

	return svc, m
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	svc, m := newMessageService(t)

	ctx := context.Background()
	sender := &entity.User{ID: uuid.New(), Role: roleOf(entity.RoleParent)}
	recipient := &entity.User{ID: uuid.New(), Role: roleOf(entity.RoleTutor)}

	m.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)
	m.messageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(ctx context.Context, message *entity.Message) {
			assert.Equal(t, sender.ID, message.SenderID)
			assert.Equal(t, recipient.ID, message.RecipientID)
			assert.Nil(t, message.ReadAt)
		}).
		Return(nil)

	message, err := svc.SendMessage(ctx, sender, &usecase.SendMessageInput{
		RecipientID: recipient.ID,
		Body:        "How did the lesson go?",
	})

	require.NoError(t, err)
	assert.Equal(t, "How did the lesson go?", message.Body)
}

func TestMessageService_SendMessage_EmptyBody(t *testing.T) {
	svc, _ := newMessageService(t)

	sender := &entity.User{ID: uuid.New()}

	_, err := svc.SendMessage(context.Background(), sender, &usecase.SendMessageInput{
		RecipientID: uuid.New(),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMessageService_SendMessage_ToSelf(t *testing.T) {
	svc, _ := newMessageService(t)

	sender := &entity.User{ID: uuid.New()}

	_, err := svc.SendMessage(context.Background(), sender, &usecase.SendMessageInput{
		RecipientID: sender.ID,
		Body:        "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMessageService_SendMessage_UnknownRecipient(t *testing.T) {
	svc, m := newMessageService(t)

	ctx := context.Background()
	sender := &entity.User{ID: uuid.New()}
	recipientID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, recipientID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.SendMessage(ctx, sender, &usecase.SendMessageInput{
		RecipientID: recipientID,
		Body:        "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestMessageService_ListConversation(t *testing.T) {
	svc, m := newMessageService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	otherID := uuid.New()
	messages := []*entity.Message{
		{ID: uuid.New(), SenderID: actor.ID, RecipientID: otherID, Body: "hi"},
		{ID: uuid.New(), SenderID: otherID, RecipientID: actor.ID, Body: "hello"},
	}

	m.messageRepo.EXPECT().ListConversation(ctx, actor.ID, otherID).Return(messages, nil)

	listed, err := svc.ListConversation(ctx, actor, otherID)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestMessageService_MarkMessageRead_RecipientOnly(t *testing.T) {
	svc, m := newMessageService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	messageID := uuid.New()
	message := &entity.Message{ID: messageID, SenderID: actor.ID, RecipientID: uuid.New()}

	m.messageRepo.EXPECT().FindByID(ctx, messageID).Return(message, nil)

	// The sender cannot mark their own message read.
	err := svc.MarkMessageRead(ctx, actor, messageID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	m.messageRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}

func TestMessageService_MarkMessageRead_Success(t *testing.T) {
	svc, m := newMessageService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	messageID := uuid.New()
	message := &entity.Message{
		ID:          messageID,
		SenderID:    uuid.New(),
		RecipientID: actor.ID,
		CreatedAt:   time.Now(),
	}

	m.messageRepo.EXPECT().FindByID(ctx, messageID).Return(message, nil)
	m.messageRepo.EXPECT().MarkRead(ctx, messageID).Return(nil)

	err := svc.MarkMessageRead(ctx, actor, messageID)

	require.NoError(t, err)
}
