package memory

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateOrder persists a new order.
func (s *Store) CreateOrder(_ context.Context, order *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	s.orders[order.ID] = cloneOrder(order)

	return nil
}

// FindOrderByID retrieves a single order by its opaque id.
func (s *Store) FindOrderByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return cloneOrder(order), nil
}

// FindOrderByNumber retrieves a single order by its natural key.
func (s *Store) FindOrderByNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		if order.OrderNumber == orderNumber {
			return cloneOrder(order), nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// ListOrders retrieves all orders ordered by creation time descending.
func (s *Store) ListOrders(_ context.Context) ([]*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*entity.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, cloneOrder(order))
	}
	sortByTimeDesc(orders, func(o *entity.Order) time.Time { return o.CreatedAt })

	return orders, nil
}

// ListOrdersByCustomerEmail retrieves orders by the denormalized customer
// email field.
func (s *Store) ListOrdersByCustomerEmail(_ context.Context, email string) ([]*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []*entity.Order
	for _, order := range s.orders {
		if order.CustomerEmail == email {
			orders = append(orders, cloneOrder(order))
		}
	}
	sortByTimeDesc(orders, func(o *entity.Order) time.Time { return o.CreatedAt })

	return orders, nil
}

// UpdateOrderStatus moves the order through its delivery lifecycle.
func (s *Store) UpdateOrderStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()

	return nil
}

// UpdateOrderPayment records the payment method and payment status.
func (s *Store) UpdateOrderPayment(_ context.Context, id uuid.UUID, method string, status entity.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.PaymentMethod = method
	order.PaymentStatus = status
	order.UpdatedAt = time.Now()

	return nil
}
