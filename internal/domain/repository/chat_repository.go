// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agency/internal/domain/entity"
	"agency/internal/errors"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when a conversation is not found.
var ErrConversationNotFound = errors.New("conversation not found")

// ChatRepository defines operations for project chat persistence. The
// document backend does not implement this family: every call returns
// ErrNotSupported there.
type ChatRepository interface {
	// CreateConversation persists a new conversation.
	CreateConversation(ctx context.Context, conv *entity.ChatConversation) error

	// FindConversationByID retrieves a conversation by its id.
	FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error)

	// FindConversationByKey retrieves a conversation by its natural key
	// (project, client).
	FindConversationByKey(ctx context.Context, projectID, clientID uuid.UUID) (*entity.ChatConversation, error)

	// ListConversationsByClient retrieves a client's conversations ordered by
	// last activity descending.
	ListConversationsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.ChatConversation, error)

	// CreateMessage appends a message to a conversation.
	CreateMessage(ctx context.Context, msg *entity.ChatMessage) error

	// ListMessages retrieves a conversation's messages ordered by creation
	// time ascending.
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*entity.ChatMessage, error)

	// TouchConversation sets the conversation's last-activity timestamp.
	// Paired with CreateMessage inside a transaction where the backend
	// supports one.
	TouchConversation(ctx context.Context, id uuid.UUID) error

	// MarkMessagesRead marks as read every message in the conversation whose
	// sender role differs from readerRole. Read state is keyed by sender
	// identity, not a recipient list.
	MarkMessagesRead(ctx context.Context, conversationID uuid.UUID, readerRole entity.Role) error
}
