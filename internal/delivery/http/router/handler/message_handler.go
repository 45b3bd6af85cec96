package handler

import (
	"log/slog"
	"net/http"
	"time"

	"homeroom/internal/delivery/http/middleware"
	"homeroom/internal/delivery/http/response"
	"homeroom/internal/domain/entity"
	"homeroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for messaging handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{uc: uc, logger: logger}
}

type sendMessageRequest struct {
	RecipientID string `json:"recipientId" validate:"required,uuid"`
	Body        string `json:"body" validate:"required"`
}

// Send delivers a message to another user.
func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipient id")
	}

	message, err := h.uc.SendMessage(c.Request().Context(), middleware.CurrentUser(c), &usecase.SendMessageInput{
		RecipientID: recipientID,
		Body:        req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newMessageView(message), "Message sent")
}

// Conversation lists the exchange with one other user, oldest first.
func (h *MessageHandler) Conversation(c echo.Context) error {
	otherID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	messages, err := h.uc.ListConversation(c.Request().Context(), middleware.CurrentUser(c), otherID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*messageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, newMessageView(message))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// MarkRead stamps a received message read.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid message id")
	}

	if err := h.uc.MarkMessageRead(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message marked read")
}

type messageView struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"senderId"`
	RecipientID string     `json:"recipientId"`
	Body        string     `json:"body"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func newMessageView(message *entity.Message) *messageView {
	return &messageView{
		ID:          message.ID.String(),
		SenderID:    message.SenderID.String(),
		RecipientID: message.RecipientID.String(),
		Body:        message.Body,
		ReadAt:      message.ReadAt,
		CreatedAt:   message.CreatedAt,
	}
}
