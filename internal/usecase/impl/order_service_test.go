package impl

import (
	"context"
	"strings"
	"testing"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/infra/persistence/memory"
	"agency/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T, store *memory.Store, mailer *recordingMailer) usecase.OrderUsecase {
	t.Helper()

	return NewOrderService(OrderServiceParams{
		OrderRepo:   store,
		InvoiceRepo: store,
		CatalogRepo: store,
		TxManager:   store,
		Mailer:      mailer,
		Logger:      testLogger(),
	})
}

func seededService(t *testing.T, store *memory.Store, name string) *entity.Service {
	t.Helper()

	services, err := store.ListServices(context.Background())
	require.NoError(t, err)
	for _, svc := range services {
		if svc.Name == name {
			return svc
		}
	}
	t.Fatalf("service %q not seeded", name)

	return nil
}

func TestOrderService_CreateOrder_ResolvesCatalogService(t *testing.T) {
	store := newTestStore()
	svc := newOrderService(t, store, &recordingMailer{})
	landing := seededService(t, store, "Landing Page")

	order, err := svc.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerName:  "Sara",
		CustomerEmail: "sara@example.com",
		ServiceID:     landing.ID,
		ServiceName:   "client supplied name",
		Price:         1,
	})
	require.NoError(t, err)

	// Catalog wins over client-supplied name and price.
	assert.True(t, order.Service.Valid)
	assert.Equal(t, landing.ID, order.Service.ID)
	assert.Equal(t, "Landing Page", order.ServiceName)
	assert.Equal(t, landing.Price, order.Price)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
}

func TestOrderService_CreateOrder_UnresolvedServiceKeepsOrder(t *testing.T) {
	store := newTestStore()
	svc := newOrderService(t, store, &recordingMailer{})

	order, err := svc.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerName:  "Sara",
		CustomerEmail: "sara@example.com",
		ServiceID:     uuid.New(),
		ServiceName:   "Custom Integration",
		Price:         9900,
	})
	require.NoError(t, err)

	// A dangling reference is tolerated, not rejected.
	assert.False(t, order.Service.Valid)
	assert.Equal(t, "Custom Integration", order.ServiceName)
	assert.Equal(t, int64(9900), order.Price)
}

func TestOrderService_CreateOrder_AppliesValidDiscount(t *testing.T) {
	store := newTestStore()
	svc := newOrderService(t, store, &recordingMailer{})
	landing := seededService(t, store, "Landing Page")

	order, err := svc.CreateOrder(context.Background(), usecase.CreateOrderInput{
		CustomerName:  "Sara",
		CustomerEmail: "sara@example.com",
		ServiceID:     landing.ID,
		DiscountCode:  "WELCOME10",
	})
	require.NoError(t, err)
	assert.Equal(t, landing.Price-landing.Price/10, order.Price)
}

func TestOrderService_CreateOrder_IgnoresInvalidDiscount(t *testing.T) {
	store := newTestStore()
	svc := newOrderService(t, store, &recordingMailer{})
	landing := seededService(t, store, "Landing Page")

	for _, code := range []string{"LEGACY15", "NOSUCHCODE"} {
		order, err := svc.CreateOrder(context.Background(), usecase.CreateOrderInput{
			CustomerName:  "Sara",
			CustomerEmail: "sara@example.com",
			ServiceID:     landing.ID,
			DiscountCode:  code,
		})
		require.NoError(t, err)
		assert.Equal(t, landing.Price, order.Price, "code %s must not discount", code)
	}
}

func TestOrderService_RecordPayment_IssuesInvoiceOnce(t *testing.T) {
	store := newTestStore()
	mailer := &recordingMailer{}
	svc := newOrderService(t, store, mailer)
	landing := seededService(t, store, "Landing Page")
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName:  "Sara",
		CustomerEmail: "sara@example.com",
		ServiceID:     landing.ID,
	})
	require.NoError(t, err)

	invoice, err := svc.RecordPayment(ctx, order.ID, "card")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "INV-"))
	assert.Equal(t, order.ID, invoice.OrderID)
	assert.Equal(t, order.Price, invoice.Amount)
	assert.Equal(t, []string{"sara@example.com"}, mailer.sent)

	paid, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, paid.PaymentStatus)
	assert.Equal(t, "card", paid.PaymentMethod)

	// A second payment cannot issue a second invoice.
	_, err = svc.RecordPayment(ctx, order.ID, "card")
	assert.ErrorIs(t, err, domainerrors.ErrInvoiceExists)
}

func TestOrderService_RecordPayment_InvoiceSnapshotIsImmutable(t *testing.T) {
	store := newTestStore()
	svc := newOrderService(t, store, &recordingMailer{})
	landing := seededService(t, store, "Landing Page")
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName:  "Sara",
		CustomerEmail: "sara@example.com",
		ServiceID:     landing.ID,
	})
	require.NoError(t, err)

	invoice, err := svc.RecordPayment(ctx, order.ID, "card")
	require.NoError(t, err)

	// Later lifecycle changes never touch the issued invoice.
	require.NoError(t, svc.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCompleted))

	after, err := svc.GetInvoiceByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice.InvoiceNumber, after.InvoiceNumber)
	assert.Equal(t, invoice.Amount, after.Amount)
	assert.Equal(t, invoice.ServiceName, after.ServiceName)
}

func TestOrderService_RecordPayment_MailFailureDoesNotFailPayment(t *testing.T) {
	store := newTestStore()
	svc := newOrderService(t, store, &recordingMailer{fail: true})
	landing := seededService(t, store, "Landing Page")
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName:  "Sara",
		CustomerEmail: "sara@example.com",
		ServiceID:     landing.ID,
	})
	require.NoError(t, err)

	invoice, err := svc.RecordPayment(ctx, order.ID, "card")
	require.NoError(t, err)
	assert.NotNil(t, invoice)
}

func TestOrderService_ListOrdersByCustomer(t *testing.T) {
	store := newTestStore()
	svc := newOrderService(t, store, &recordingMailer{})
	ctx := context.Background()

	for _, email := range []string{"sara@example.com", "sara@example.com", "omar@example.com"} {
		_, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
			CustomerName:  "Customer",
			CustomerEmail: email,
			ServiceName:   "Custom",
			Price:         100,
		})
		require.NoError(t, err)
	}

	orders, err := svc.ListOrdersByCustomer(ctx, "sara@example.com")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderService_ListOrdersByCustomer_OrphansOldEmail(t *testing.T) {
	store := newTestStore()
	svc := newOrderService(t, store, &recordingMailer{})
	ctx := context.Background()

	// The order snapshots the customer email at creation and the lookup is a
	// plain equality join on that snapshot. An order placed under an address
	// the customer later stops using is silently absent from lookups under
	// the new address; there is no account-id link to recover it through.
	_, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName:  "Sara",
		CustomerEmail: "sara.old@example.com",
		ServiceName:   "Custom",
		Price:         100,
	})
	require.NoError(t, err)

	orphaned, err := svc.ListOrdersByCustomer(ctx, "sara.new@example.com")
	require.NoError(t, err)
	assert.Empty(t, orphaned)

	reachable, err := svc.ListOrdersByCustomer(ctx, "sara.old@example.com")
	require.NoError(t, err)
	assert.Len(t, reachable, 1)
}
