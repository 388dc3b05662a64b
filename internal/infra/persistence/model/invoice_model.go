package model

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceModel mirrors the 'invoices' table. Rows are append-only snapshots;
// the unique OrderID index enforces one invoice per order.
type InvoiceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	InvoiceNumber string    `gorm:"type:varchar(64);unique;not null"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CustomerName  string    `gorm:"type:varchar(100);not null"`
	CustomerEmail string    `gorm:"type:varchar(255);not null"`
	ServiceName   string    `gorm:"type:varchar(100)"`
	Amount        int64     `gorm:"not null"`
	IssuedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}
