package impl

import (
	"context"
	"testing"

	"agency/internal/domain/entity"
	"agency/internal/infra/persistence/memory"
	"agency/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(store *memory.Store) usecase.AnalyticsUsecase {
	return NewAnalyticsService(AnalyticsServiceParams{
		ReportRepo:  store,
		OrderRepo:   store,
		InvoiceRepo: store,
		AccountRepo: store,
		TaskRepo:    store,
	})
}

func TestAnalyticsService_DashboardStats(t *testing.T) {
	store := newTestStore()
	orders := newOrderService(t, store, &recordingMailer{})
	analytics := newAnalyticsService(store)
	ctx := context.Background()
	landing := seededService(t, store, "Landing Page")

	seedAccount(t, store, entity.RoleClient)
	seedAccount(t, store, entity.RoleClient)
	seedAccount(t, store, entity.RoleEmployee)

	paid, err := orders.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName:  "Sara",
		CustomerEmail: "sara@example.com",
		ServiceID:     landing.ID,
	})
	require.NoError(t, err)
	_, err = orders.RecordPayment(ctx, paid.ID, "card")
	require.NoError(t, err)
	require.NoError(t, orders.UpdateOrderStatus(ctx, paid.ID, entity.OrderStatusCompleted))

	_, err = orders.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName:  "Omar",
		CustomerEmail: "omar@example.com",
		ServiceName:   "Custom",
		Price:         5000,
	})
	require.NoError(t, err)

	stats, err := analytics.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.OpenOrders)
	assert.Equal(t, int64(2), stats.TotalClients)
	assert.Equal(t, landing.Price, stats.TotalRevenue)
	assert.Equal(t, landing.Price, stats.MonthRevenue)
	assert.Equal(t, 50, stats.OrderCompletionRate)

	require.Len(t, stats.RevenueByMonth, 6)
	assert.Equal(t, landing.Price, stats.RevenueByMonth[5].Value)
	require.Len(t, stats.ClientGrowthByMonth, 6)
	assert.Equal(t, int64(2), stats.ClientGrowthByMonth[5].Value)

	require.NotEmpty(t, stats.TopServices)
	assert.Equal(t, "Landing Page", stats.TopServices[0].ServiceName)

	// The preceding 30-day window is empty, so paid revenue in the trailing
	// window reads as full growth.
	assert.Equal(t, 100, stats.RevenueTrend)
}

func TestAnalyticsService_EmployeeProductivity(t *testing.T) {
	store := newTestStore()
	projects := newProjectService(store)
	analytics := newAnalyticsService(store)
	ctx := context.Background()

	busy := seedAccount(t, store, entity.RoleEmployee)
	idle := seedAccount(t, store, entity.RoleEmployee)

	project, err := projects.CreateProject(ctx, usecase.CreateProjectInput{
		ClientID: uuid.New(),
		Name:     "Storefront rebuild",
	})
	require.NoError(t, err)

	done, err := projects.CreateTask(ctx, usecase.CreateTaskInput{
		EmployeeID:     busy.ID,
		ProjectID:      project.ID,
		Title:          "Wireframes",
		HoursRemaining: 8,
	})
	require.NoError(t, err)
	require.NoError(t, projects.UpdateTaskProgress(ctx, done.ID, 0, true))

	_, err = projects.CreateTask(ctx, usecase.CreateTaskInput{
		EmployeeID:     busy.ID,
		ProjectID:      project.ID,
		Title:          "API endpoints",
		HoursRemaining: 16,
	})
	require.NoError(t, err)

	rows, err := analytics.EmployeeProductivity(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := make(map[string]*entity.EmployeeProductivity, len(rows))
	for _, row := range rows {
		byID[row.EmployeeID] = row
	}

	busyRow := byID[busy.ID.String()]
	require.NotNil(t, busyRow)
	assert.Equal(t, 2, busyRow.TasksTotal)
	assert.Equal(t, 1, busyRow.TasksCompleted)
	assert.Equal(t, 16, busyRow.HoursRemaining)
	assert.Equal(t, 50, busyRow.CompletionRate)

	// Employees without tasks still get a row.
	idleRow := byID[idle.ID.String()]
	require.NotNil(t, idleRow)
	assert.Zero(t, idleRow.TasksTotal)
	assert.Zero(t, idleRow.CompletionRate)
}

func TestAnalyticsService_FinancialReport(t *testing.T) {
	store := newTestStore()
	orders := newOrderService(t, store, &recordingMailer{})
	analytics := newAnalyticsService(store)
	ctx := context.Background()
	landing := seededService(t, store, "Landing Page")

	order, err := orders.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerName:  "Sara",
		CustomerEmail: "sara@example.com",
		ServiceID:     landing.ID,
	})
	require.NoError(t, err)
	_, err = orders.RecordPayment(ctx, order.ID, "card")
	require.NoError(t, err)

	report, err := analytics.FinancialReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, landing.Price, report.TotalRevenue)
	assert.Equal(t, int64(1), report.InvoiceCount)
	require.Len(t, report.TopServices, 1)
	assert.Equal(t, "Landing Page", report.TopServices[0].ServiceName)
}
