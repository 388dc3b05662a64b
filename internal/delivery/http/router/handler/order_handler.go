package handler

import (
	"net/http"

	"agency/internal/delivery/http/response"
	"agency/internal/domain/entity"
	"agency/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order and invoice handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type createOrderRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	ServiceID     string `json:"service_id"`
	ServiceName   string `json:"service_name"`
	Price         int64  `json:"price" validate:"gte=0"`
	DiscountCode  string `json:"discount_code"`
}

// CreateOrder places a new order. No login is required; orders are keyed to
// the customer by email.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var input createOrderRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	serviceID := uuid.Nil
	if input.ServiceID != "" {
		parsed, err := uuid.Parse(input.ServiceID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid service ID")
		}
		serviceID = parsed
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		ServiceID:     serviceID,
		ServiceName:   input.ServiceName,
		Price:         input.Price,
		DiscountCode:  input.DiscountCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// GetOrder returns an order by id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// GetOrderByNumber returns an order by its business number.
func (h *OrderHandler) GetOrderByNumber(c echo.Context) error {
	order, err := h.uc.GetOrderByNumber(c.Request().Context(), c.Param("number"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOrders returns all orders for the staff back office.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// TrackOrders returns a customer's orders by email.
func (h *OrderHandler) TrackOrders(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Email is required")
	}

	orders, err := h.uc.ListOrdersByCustomer(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

// UpdateOrderStatus moves an order through its delivery lifecycle.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var input updateOrderStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.UpdateOrderStatus(c.Request().Context(), id, entity.OrderStatus(input.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}

type recordPaymentRequest struct {
	Method string `json:"method" validate:"required"`
}

// RecordPayment marks an order paid and returns the issued invoice.
func (h *OrderHandler) RecordPayment(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var input recordPaymentRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	invoice, err := h.uc.RecordPayment(c.Request().Context(), id, input.Method)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, invoice, "Payment recorded and invoice issued")
}

// GetInvoiceByOrder returns the invoice issued for an order.
func (h *OrderHandler) GetInvoiceByOrder(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	invoice, err := h.uc.GetInvoiceByOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invoice, "Invoice retrieved successfully")
}

// ListInvoices returns all invoices for the staff back office.
func (h *OrderHandler) ListInvoices(c echo.Context) error {
	invoices, err := h.uc.ListInvoices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invoices, "Invoices retrieved successfully")
}
