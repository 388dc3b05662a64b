// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agency/internal/domain/entity"
	"agency/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// CreateOrder persists a new order. The order number must already be
	// assigned; it is immutable afterwards.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves a single order by its opaque id.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByNumber retrieves a single order by its natural key.
	FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// ListOrders retrieves all orders ordered by creation time descending.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// ListOrdersByCustomerEmail retrieves orders whose denormalized customer
	// email matches. Orders and clients are related by this field, not a
	// foreign key: renaming a client's email orphans historical orders from
	// this lookup.
	ListOrdersByCustomerEmail(ctx context.Context, email string) ([]*entity.Order, error)

	// UpdateOrderStatus moves the order through its delivery lifecycle.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdateOrderPayment records the payment method and payment status.
	// It never touches any other field.
	UpdateOrderPayment(ctx context.Context, id uuid.UUID, method string, status entity.PaymentStatus) error
}
