package usecase

import (
	"context"

	"agency/internal/domain/entity"
)

// AnalyticsUsecase defines the interface for derived reporting. All values
// are computed on demand from live data; nothing is cached or persisted.
type AnalyticsUsecase interface {
	// DashboardStats assembles the admin dashboard: backend-computed counts
	// plus six trailing month series, the revenue trend and completion
	// ratios.
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)

	// EmployeeProductivity reports per-employee task totals and completion
	// rates.
	EmployeeProductivity(ctx context.Context) ([]*entity.EmployeeProductivity, error)

	// FinancialReport summarizes revenue, invoices and top services.
	FinancialReport(ctx context.Context) (*entity.FinancialReport, error)
}
