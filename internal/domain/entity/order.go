// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the delivery lifecycle of an order. It is independent of the
// payment lifecycle: an order may be completed before or after it is paid.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

// PaymentStatus is the payment lifecycle of an order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// ServiceRef is an explicit, possibly-missing link from an order to a catalog
// service. An order created with an unknown service id keeps a Missing ref
// instead of failing; callers must handle both cases.
type ServiceRef struct {
	ID    uuid.UUID
	Valid bool
}

// MissingServiceRef returns the ref used when an order's service id does not
// resolve against the catalog.
func MissingServiceRef() ServiceRef {
	return ServiceRef{}
}

// Order represents a client's purchase of a catalog service.
//
// OrderNumber is generated once at creation and immutable afterwards. Price is
// in integer currency units (cents). Only Status, PaymentStatus and
// PaymentMethod may change after creation.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	OrderNumber   string        `json:"order_number"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone string        `json:"customer_phone"`
	Service       ServiceRef    `json:"-"`
	ServiceName   string        `json:"service_name"`
	Price         int64         `json:"price"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentMethod string        `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Paid reports whether the order's payment has completed. Invoice creation is
// gated on this.
func (o *Order) Paid() bool {
	return o.PaymentStatus == PaymentStatusCompleted
}
