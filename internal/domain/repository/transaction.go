package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// It wraps the two-step write sequences the domain has (append message then
// touch conversation, record payment then issue invoice) in an explicit
// boundary. The relational backend runs fn inside a real transaction; the
// in-memory and document backends run it as a pass-through, so on those
// backends the sequence is two independent writes with a documented staleness
// window rather than atomicity.
type TransactionManager interface {
	// Execute runs a function within a database transaction where the backend
	// supports one. If the function returns an error, the transaction is
	// rolled back; otherwise it is committed.
	Execute(ctx context.Context, fn func(repos Atomic) error) error
}

// Atomic provides repository instances bound to the current transaction.
// Only the families involved in multi-step write sequences are exposed.
type Atomic interface {
	// Orders returns an OrderRepository bound to the current transaction.
	Orders() OrderRepository

	// Invoices returns an InvoiceRepository bound to the current transaction.
	Invoices() InvoiceRepository

	// Chat returns a ChatRepository bound to the current transaction.
	Chat() ChatRepository
}
