package handler

import (
	"net/http"

	"agency/internal/delivery/http/response"
	"agency/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for project chat handlers.
type ChatHandler struct {
	uc usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

type openConversationRequest struct {
	ProjectID string `json:"project_id" validate:"required,uuid"`
}

// OpenConversation returns the conversation for the caller's project,
// creating it on first use.
func (h *ChatHandler) OpenConversation(c echo.Context) error {
	clientID, ok := accountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input openConversationRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid conversation input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	projectID, err := parseUUIDField(input.ProjectID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	conv, err := h.uc.GetOrCreateConversation(c.Request().Context(), projectID, clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conv, "Conversation retrieved successfully")
}

// ListConversations returns the caller's conversations.
func (h *ChatHandler) ListConversations(c echo.Context) error {
	clientID, ok := accountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	convs, err := h.uc.ListConversations(c.Request().Context(), clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, convs, "Conversations retrieved successfully")
}

type sendMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

// SendMessage appends a message to a conversation.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	conversationID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}
	senderID, ok := accountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}
	senderRole, ok := accountRole(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid role in token")
	}

	var input sendMessageRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	msg, err := h.uc.SendMessage(c.Request().Context(), usecase.SendMessageInput{
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderRole:     senderRole,
		Body:           input.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, msg, "Message sent")
}

// GetMessages returns a conversation's messages and marks the other side's
// messages read.
func (h *ChatHandler) GetMessages(c echo.Context) error {
	conversationID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation ID")
	}
	readerRole, ok := accountRole(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid role in token")
	}

	msgs, err := h.uc.GetMessages(c.Request().Context(), conversationID, readerRole)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, msgs, "Messages retrieved successfully")
}
