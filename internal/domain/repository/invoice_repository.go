// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agency/internal/domain/entity"
	"agency/internal/errors"

	"github.com/google/uuid"
)

// ErrInvoiceNotFound is returned when an invoice is not found.
var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceRepository defines operations for invoice persistence. Invoices are
// append-only snapshots: there is deliberately no update operation.
type InvoiceRepository interface {
	// CreateInvoice persists a new invoice snapshot.
	CreateInvoice(ctx context.Context, invoice *entity.Invoice) error

	// FindInvoiceByID retrieves an invoice by its id.
	FindInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)

	// FindInvoiceByOrderID retrieves the invoice issued for an order, if any.
	// Used to enforce the one-invoice-per-order rule.
	FindInvoiceByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error)

	// ListInvoices retrieves all invoices ordered by issue time descending.
	ListInvoices(ctx context.Context) ([]*entity.Invoice, error)
}
