package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. The composite unique index on
// (role, email) gives each entity type its own login namespace.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Role         string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_accounts_role_email"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_role_email"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(50)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// SessionModel mirrors the 'sessions' table. The relational backend owns
// session storage when it is the active backend.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
