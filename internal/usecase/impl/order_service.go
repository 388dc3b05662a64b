package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/domain/service"
	"agency/internal/infra/numbering"
	"agency/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	invoiceRepo repository.InvoiceRepository
	catalogRepo repository.CatalogRepository
	txManager   repository.TransactionManager
	mailer      service.Mailer
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	InvoiceRepo repository.InvoiceRepository
	CatalogRepo repository.CatalogRepository
	TxManager   repository.TransactionManager
	Mailer      service.Mailer
	Logger      *slog.Logger
}

// NewOrderService creates a new order service instance.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		invoiceRepo: params.InvoiceRepo,
		catalogRepo: params.CatalogRepo,
		txManager:   params.TxManager,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}
}

// CreateOrder places a new order. A service id that does not resolve is not
// an error: the order keeps a missing ref with the client-supplied name and
// price. A discount code that does not validate is ignored.
func (s *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	serviceRef := entity.MissingServiceRef()
	serviceName := input.ServiceName
	price := input.Price

	if input.ServiceID != uuid.Nil {
		svc, err := s.catalogRepo.FindServiceByID(ctx, input.ServiceID)
		switch {
		case err == nil:
			serviceRef = entity.ServiceRef{ID: svc.ID, Valid: true}
			serviceName = svc.Name
			price = svc.Price
		case errors.Is(err, repository.ErrServiceNotFound):
			// keep the missing ref
		default:
			return nil, errors.Wrap(err, "failed to resolve service")
		}
	}

	if input.DiscountCode != "" {
		discount, err := s.catalogRepo.FindDiscountCodeByCode(ctx, input.DiscountCode)
		if err != nil && !errors.Is(err, repository.ErrDiscountCodeNotFound) {
			return nil, errors.Wrap(err, "failed to resolve discount code")
		}
		if err == nil && discount.ValidAt(time.Now()) {
			price -= price * int64(discount.Percent) / 100
		}
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New(),
		OrderNumber:   numbering.Next(numbering.OrderPrefix),
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Service:       serviceRef,
		ServiceName:   serviceName,
		Price:         price,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	return order, nil
}

// GetOrder retrieves an order by id.
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// GetOrderByNumber retrieves an order by its business number.
func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return order, nil
}

// ListOrders retrieves all orders, newest first.
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListOrdersByCustomer retrieves a customer's orders by email.
func (s *orderService) ListOrdersByCustomer(ctx context.Context, email string) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrdersByCustomerEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order through its delivery lifecycle.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	if err := s.orderRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}

// RecordPayment marks the order paid and issues the invoice snapshot. Both
// writes run inside one transaction on the relational backend; elsewhere the
// sequence is two independent writes. The confirmation mail is best-effort
// and never fails the operation.
func (s *orderService) RecordPayment(ctx context.Context, id uuid.UUID, method string) (*entity.Invoice, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if _, err := s.invoiceRepo.FindInvoiceByOrderID(ctx, order.ID); err == nil {
		return nil, domainerrors.ErrInvoiceExists
	} else if !errors.Is(err, repository.ErrInvoiceNotFound) {
		return nil, errors.Wrap(err, "failed to check existing invoice")
	}

	invoice := &entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: numbering.Next(numbering.InvoicePrefix),
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		ServiceName:   order.ServiceName,
		Amount:        order.Price,
		IssuedAt:      time.Now(),
	}

	err = s.txManager.Execute(ctx, func(repos repository.Atomic) error {
		if err := repos.Orders().UpdateOrderPayment(ctx, order.ID, method, entity.PaymentStatusCompleted); err != nil {
			return errors.Wrap(err, "failed to record payment")
		}

		return repos.Invoices().CreateInvoice(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Payment received for order %s", order.OrderNumber)
	body := fmt.Sprintf("Thank you. Invoice %s over %d has been issued for %s.",
		invoice.InvoiceNumber, invoice.Amount, invoice.ServiceName)
	if err := s.mailer.Send(ctx, order.CustomerEmail, subject, body); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "payment confirmation mail failed",
			slog.String("orderNumber", order.OrderNumber),
			slog.String("error", err.Error()),
		)
	}

	return invoice, nil
}

// GetInvoiceByOrder retrieves the invoice issued for an order.
func (s *orderService) GetInvoiceByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, domainerrors.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice")
	}

	return invoice, nil
}

// ListInvoices retrieves all invoices, newest first.
func (s *orderService) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	return invoices, nil
}
