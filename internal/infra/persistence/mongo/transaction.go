package mongo

import (
	"context"

	"agency/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// passthroughTransactionManager implements the domain's TransactionManager
// interface without transactional semantics. The callback runs against the
// live collections, so a multi-step sequence that fails midway leaves the
// earlier writes in place. Only the relational backend offers atomicity.
type passthroughTransactionManager struct {
	db *mongo.Database
}

// passthroughAtomic hands out ordinary repositories; nothing is bound to a
// transaction.
type passthroughAtomic struct {
	db *mongo.Database
}

// Orders returns the order repository.
func (a *passthroughAtomic) Orders() repository.OrderRepository {
	return NewOrderRepository(a.db)
}

// Invoices returns the invoice repository.
func (a *passthroughAtomic) Invoices() repository.InvoiceRepository {
	return NewInvoiceRepository(a.db)
}

// Chat returns the unsupported chat stand-in.
func (a *passthroughAtomic) Chat() repository.ChatRepository {
	return NewChatRepository()
}

// NewTransactionManager is the constructor for passthroughTransactionManager.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &passthroughTransactionManager{db: db}
}

// Execute runs fn directly. There is no rollback on error.
func (tm *passthroughTransactionManager) Execute(_ context.Context, fn func(repos repository.Atomic) error) error {
	return fn(&passthroughAtomic{db: tm.db})
}
