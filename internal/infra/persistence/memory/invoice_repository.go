package memory

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateInvoice persists a new invoice snapshot.
func (s *Store) CreateInvoice(_ context.Context, invoice *entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	if invoice.IssuedAt.IsZero() {
		invoice.IssuedAt = time.Now()
	}
	s.invoices[invoice.ID] = cloneInvoice(invoice)

	return nil
}

// FindInvoiceByID retrieves an invoice by its id.
func (s *Store) FindInvoiceByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	invoice, ok := s.invoices[id]
	if !ok {
		return nil, repository.ErrInvoiceNotFound
	}

	return cloneInvoice(invoice), nil
}

// FindInvoiceByOrderID retrieves the invoice issued for an order, if any.
func (s *Store) FindInvoiceByOrderID(_ context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, invoice := range s.invoices {
		if invoice.OrderID == orderID {
			return cloneInvoice(invoice), nil
		}
	}

	return nil, repository.ErrInvoiceNotFound
}

// ListInvoices retrieves all invoices ordered by issue time descending.
func (s *Store) ListInvoices(_ context.Context) ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	invoices := make([]*entity.Invoice, 0, len(s.invoices))
	for _, invoice := range s.invoices {
		invoices = append(invoices, cloneInvoice(invoice))
	}
	sortByTimeDesc(invoices, func(i *entity.Invoice) time.Time { return i.IssuedAt })

	return invoices, nil
}
