package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatConversationModel mirrors the 'chat_conversations' table. The composite
// unique index on (project_id, client_id) keeps one thread per pair.
type ChatConversationModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	ProjectID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_chat_project_client"`
	ClientID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_chat_project_client"`
	EmployeeID     *uuid.UUID `gorm:"type:uuid"`
	LastActivityAt time.Time  `gorm:"index"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatConversationModel) TableName() string {
	return "chat_conversations"
}

// ChatMessageModel mirrors the 'chat_messages' table.
type ChatMessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null"`
	SenderRole     string    `gorm:"type:varchar(20);not null"`
	Body           string    `gorm:"type:text;not null"`
	Read           bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
