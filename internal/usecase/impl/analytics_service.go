package impl

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"
	"agency/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	trailingMonths   = 6
	topServicesLimit = 5
)

type analyticsService struct {
	reportRepo  repository.ReportRepository
	orderRepo   repository.OrderRepository
	invoiceRepo repository.InvoiceRepository
	accountRepo repository.AccountRepository
	taskRepo    repository.TaskRepository
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	ReportRepo  repository.ReportRepository
	OrderRepo   repository.OrderRepository
	InvoiceRepo repository.InvoiceRepository
	AccountRepo repository.AccountRepository
	TaskRepo    repository.TaskRepository
}

// NewAnalyticsService creates a new analytics service instance.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		reportRepo:  params.ReportRepo,
		orderRepo:   params.OrderRepo,
		invoiceRepo: params.InvoiceRepo,
		accountRepo: params.AccountRepo,
		taskRepo:    params.TaskRepo,
	}
}

// DashboardStats assembles the admin dashboard. Counts come from the backend
// pushdown; the month series and percentages are derived here from live rows.
func (s *analyticsService) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	counts, err := s.reportRepo.DashboardCounts(ctx, monthStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute dashboard counts")
	}

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	clients, err := s.accountRepo.ListAccountsByRole(ctx, entity.RoleClient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	recentRevenue, previousRevenue := revenueWindows(orders, now)

	completedOrders := int64(0)
	for _, o := range orders {
		if o.Status == entity.OrderStatusCompleted {
			completedOrders++
		}
	}

	return &entity.DashboardStats{
		DashboardCounts:       *counts,
		RevenueByMonth:        revenueByMonth(orders, now, trailingMonths),
		OrdersByMonth:         ordersByMonth(orders, now, trailingMonths),
		ClientGrowthByMonth:   clientGrowthByMonth(clients, now, trailingMonths),
		TopServices:           topServicesByRevenue(orders, topServicesLimit),
		RevenueTrend:          trendPercent(recentRevenue, previousRevenue),
		OrderCompletionRate:   ratioPercent(completedOrders, counts.TotalOrders),
		ProjectCompletionRate: ratioPercent(counts.CompletedProjects, counts.TotalProjects),
	}, nil
}

// EmployeeProductivity reports task totals and completion rates per employee.
// Employees with no tasks still appear, with zero rows and a zero rate.
func (s *analyticsService) EmployeeProductivity(ctx context.Context) ([]*entity.EmployeeProductivity, error) {
	employees, err := s.accountRepo.ListAccountsByRole(ctx, entity.RoleEmployee)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	rows := make([]*entity.EmployeeProductivity, 0, len(employees))
	for _, emp := range employees {
		tasks, err := s.taskRepo.ListTasksByEmployee(ctx, emp.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list tasks by employee")
		}

		row := &entity.EmployeeProductivity{
			EmployeeID:   emp.ID.String(),
			EmployeeName: emp.Name,
			TasksTotal:   len(tasks),
		}
		for _, t := range tasks {
			if t.Completed {
				row.TasksCompleted++
			}
			row.HoursRemaining += t.HoursRemaining
		}
		row.CompletionRate = ratioPercent(int64(row.TasksCompleted), int64(row.TasksTotal))
		rows = append(rows, row)
	}

	return rows, nil
}

// FinancialReport summarizes revenue, invoices and the top services.
func (s *analyticsService) FinancialReport(ctx context.Context) (*entity.FinancialReport, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	counts, err := s.reportRepo.DashboardCounts(ctx, monthStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute dashboard counts")
	}

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	return &entity.FinancialReport{
		TotalRevenue:   counts.TotalRevenue,
		MonthRevenue:   counts.MonthRevenue,
		InvoiceCount:   int64(len(invoices)),
		RevenueByMonth: revenueByMonth(orders, now, trailingMonths),
		TopServices:    topServicesByRevenue(orders, topServicesLimit),
	}, nil
}
