package postgres

import (
	"context"

	"agency/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface
// using GORM. This is the only backend with real transactional semantics; the
// in-memory and document backends run the callback as a pass-through.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormAtomic provides repository instances bound to one GORM transaction.
type gormAtomic struct {
	tx *gorm.DB // a transaction handle in GORM is also a *gorm.DB
}

// Orders returns an OrderRepository bound to the transaction.
func (a *gormAtomic) Orders() repository.OrderRepository {
	return NewOrderRepository(a.tx)
}

// Invoices returns an InvoiceRepository bound to the transaction.
func (a *gormAtomic) Invoices() repository.InvoiceRepository {
	return NewInvoiceRepository(a.tx)
}

// Chat returns a ChatRepository bound to the transaction.
func (a *gormAtomic) Chat() repository.ChatRepository {
	return NewChatRepository(a.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repos repository.Atomic) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic so the connection never leaks an open transaction.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormAtomic{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v (original error)", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
