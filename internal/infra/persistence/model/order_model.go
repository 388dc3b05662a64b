package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. ServiceID is nullable: an order
// whose service reference did not resolve keeps a NULL link. CustomerEmail is
// denormalized; orders relate to clients through it, not a foreign key.
type OrderModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	OrderNumber   string     `gorm:"type:varchar(64);unique;not null"`
	CustomerName  string     `gorm:"type:varchar(100);not null"`
	CustomerEmail string     `gorm:"type:varchar(255);not null;index"`
	CustomerPhone string     `gorm:"type:varchar(50)"`
	ServiceID     *uuid.UUID `gorm:"type:uuid"`
	ServiceName   string     `gorm:"type:varchar(100)"`
	Price         int64      `gorm:"not null"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	PaymentStatus string     `gorm:"type:varchar(20);not null;index"`
	PaymentMethod string     `gorm:"type:varchar(50)"`
	CreatedAt     time.Time  `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
