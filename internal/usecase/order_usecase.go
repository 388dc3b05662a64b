package usecase

import (
	"context"

	"agency/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput carries the fields needed to place an order. ServiceID
// may reference a catalog service; if it does not resolve, the order is
// still created with a missing service ref and the client-supplied name and
// price.
type CreateOrderInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ServiceID     uuid.UUID
	ServiceName   string
	Price         int64
	DiscountCode  string
}

// OrderUsecase defines the interface for order management and invoicing.
type OrderUsecase interface {
	// CreateOrder places a new order. The price comes from the catalog when
	// the service resolves, less any valid discount; invalid discount codes
	// are ignored rather than rejected.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order by id.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// GetOrderByNumber retrieves an order by its business number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// ListOrders retrieves all orders, newest first. Staff only.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// ListOrdersByCustomer retrieves a customer's orders by email.
	ListOrdersByCustomer(ctx context.Context, email string) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order through its delivery lifecycle.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// RecordPayment marks the order paid and issues the invoice snapshot in
	// the same transaction where the backend supports one. A confirmation
	// mail is sent best-effort afterwards.
	RecordPayment(ctx context.Context, id uuid.UUID, method string) (*entity.Invoice, error)

	// GetInvoiceByOrder retrieves the invoice issued for an order.
	GetInvoiceByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error)

	// ListInvoices retrieves all invoices, newest first. Staff only.
	ListInvoices(ctx context.Context) ([]*entity.Invoice, error)
}
