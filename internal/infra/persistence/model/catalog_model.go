// Package model contains the GORM persistence models. They mirror database
// tables and are mapped to and from pure domain entities inside the postgres
// repositories.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ServiceModel mirrors the 'services' table. Name is the natural key used by
// idempotent seeding.
type ServiceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(50);index"`
	Price       int64     `gorm:"not null"`
	Features    datatypes.JSON
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// DiscountCodeModel mirrors the 'discount_codes' table. Code is the natural
// key used by idempotent seeding.
type DiscountCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Code      string    `gorm:"type:varchar(50);unique;not null"`
	Percent   int       `gorm:"not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiscountCodeModel) TableName() string {
	return "discount_codes"
}
