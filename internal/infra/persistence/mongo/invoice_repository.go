package mongo

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// invoiceRepository implements the repository.InvoiceRepository interface.
// Invoices are append-only; there is deliberately no update method.
type invoiceRepository struct {
	db *mongo.Database
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *mongo.Database) repository.InvoiceRepository {
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
	if invoice.IssuedAt.IsZero() {
		invoice.IssuedAt = time.Now()
	}

	if _, err := repo.db.Collection(collInvoices).
		InsertOne(ctx, fromInvoiceDomain(invoice)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrInvoiceExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	return nil
}

// FindInvoiceByID retrieves an invoice by its id.
func (repo *invoiceRepository) FindInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

// FindInvoiceByOrderID retrieves the invoice issued for an order, if any.
func (repo *invoiceRepository) FindInvoiceByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	return repo.findOne(ctx, bson.M{"order_id": orderID.String()})
}

func (repo *invoiceRepository) findOne(ctx context.Context, filter bson.M) (*entity.Invoice, error) {
	var doc invoiceDocument

	err := repo.db.Collection(collInvoices).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice")
	}

	return doc.toDomain()
}

// ListInvoices retrieves all invoices ordered by issue time descending.
func (repo *invoiceRepository) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	cursor, err := repo.db.Collection(collInvoices).
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "issued_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}
	defer cursor.Close(ctx)

	var docs []invoiceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode invoices")
	}

	invoices := make([]*entity.Invoice, 0, len(docs))
	for i := range docs {
		invoice, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	return invoices, nil
}
