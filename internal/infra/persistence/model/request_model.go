package model

import (
	"time"

	"github.com/google/uuid"
)

// ModificationRequestModel mirrors the 'modification_requests' table.
type ModificationRequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ModificationRequestModel) TableName() string {
	return "modification_requests"
}

// FeatureRequestModel mirrors the 'feature_requests' table. Estimates default
// to zero until staff record them.
type FeatureRequestModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Description   string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	EstimatedCost int64     `gorm:"not null;default:0"`
	EstimatedDays int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeatureRequestModel) TableName() string {
	return "feature_requests"
}
