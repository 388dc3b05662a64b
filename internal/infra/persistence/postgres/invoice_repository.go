package postgres

import (
	"context"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// invoiceRepository implements the repository.InvoiceRepository interface.
// Invoices are append-only; there is deliberately no update method.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// CreateInvoice persists a new invoice snapshot. The unique order id index
// rejects a second invoice for the same order.
func (repo *invoiceRepository) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}

	invoiceM := fromInvoiceDomain(invoice)

	if err := repo.db.WithContext(ctx).Create(invoiceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvoiceExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	invoice.IssuedAt = invoiceM.IssuedAt

	return nil
}

// FindInvoiceByID retrieves an invoice by its id.
func (repo *invoiceRepository) FindInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by ID")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// FindInvoiceByOrderID retrieves the invoice issued for an order, if any.
func (repo *invoiceRepository) FindInvoiceByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by order ID")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// ListInvoices retrieves all invoices ordered by issue time descending.
func (repo *invoiceRepository) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	var invoiceMs []model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Order("issued_at DESC").
		Find(&invoiceMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	invoices := make([]*entity.Invoice, 0, len(invoiceMs))
	for i := range invoiceMs {
		invoices = append(invoices, toInvoiceDomain(&invoiceMs[i]))
	}

	return invoices, nil
}

func fromInvoiceDomain(invoice *entity.Invoice) *model.InvoiceModel {
	return &model.InvoiceModel{
		ID:            invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		OrderID:       invoice.OrderID,
		CustomerName:  invoice.CustomerName,
		CustomerEmail: invoice.CustomerEmail,
		ServiceName:   invoice.ServiceName,
		Amount:        invoice.Amount,
		IssuedAt:      invoice.IssuedAt,
	}
}

func toInvoiceDomain(invoiceM *model.InvoiceModel) *entity.Invoice {
	return &entity.Invoice{
		ID:            invoiceM.ID,
		InvoiceNumber: invoiceM.InvoiceNumber,
		OrderID:       invoiceM.OrderID,
		CustomerName:  invoiceM.CustomerName,
		CustomerEmail: invoiceM.CustomerEmail,
		ServiceName:   invoiceM.ServiceName,
		Amount:        invoiceM.Amount,
		IssuedAt:      invoiceM.IssuedAt,
	}
}
