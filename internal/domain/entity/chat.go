// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatConversation groups messages exchanged over a project. It is keyed by
// (project, client, optional employee). LastActivityAt is touched whenever a
// message is appended.
type ChatConversation struct {
	ID             uuid.UUID  `json:"id"`
	ProjectID      uuid.UUID  `json:"project_id"`
	ClientID       uuid.UUID  `json:"client_id"`
	EmployeeID     *uuid.UUID `json:"employee_id"`
	LastActivityAt time.Time  `json:"last_activity_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ChatMessage is an append-only message within a conversation, ordered by
// creation time. Read state is tracked per message and keyed by the sender's
// identity, not a recipient list.
type ChatMessage struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderRole     Role      `json:"sender_role"`
	SenderID       uuid.UUID `json:"sender_id"`
	Body           string    `json:"body"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}
