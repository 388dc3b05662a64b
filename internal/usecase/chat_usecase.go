package usecase

import (
	"context"

	"agency/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput carries the fields needed to append a chat message.
type SendMessageInput struct {
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	SenderRole     entity.Role
	Body           string
}

// ChatUsecase defines the interface for project chat. On the document
// backend every operation fails with the backend's capability-gap error.
type ChatUsecase interface {
	// GetOrCreateConversation returns the conversation for a (project,
	// client) pair, creating it on first use.
	GetOrCreateConversation(ctx context.Context, projectID, clientID uuid.UUID) (*entity.ChatConversation, error)

	// ListConversations retrieves a client's conversations, most recently
	// active first.
	ListConversations(ctx context.Context, clientID uuid.UUID) ([]*entity.ChatConversation, error)

	// SendMessage appends a message and touches the conversation's last
	// activity in the same transaction where the backend supports one.
	SendMessage(ctx context.Context, input SendMessageInput) (*entity.ChatMessage, error)

	// GetMessages retrieves a conversation's messages in order and marks as
	// read every message the reader did not send.
	GetMessages(ctx context.Context, conversationID uuid.UUID, readerRole entity.Role) ([]*entity.ChatMessage, error)
}
