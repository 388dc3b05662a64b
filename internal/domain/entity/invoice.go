// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is derived from exactly one paid order. Customer, service and amount
// fields are copied at creation time so later order mutation never alters an
// issued invoice. Invoices are append-only: there is no update operation.
type Invoice struct {
	ID            uuid.UUID `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	OrderID       uuid.UUID `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ServiceName   string    `json:"service_name"`
	Amount        int64     `json:"amount"`
	IssuedAt      time.Time `json:"issued_at"`
}
