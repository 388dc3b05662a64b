package postgres

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"
	"agency/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface.
// Counting and summing are pushed into SQL so the dashboard never pages whole
// tables through the application.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// DashboardCounts computes the dashboard aggregates server-side. The
// semantics match the scan-based backends exactly: revenue counts orders
// whose payment completed, open orders are those not yet completed.
func (repo *reportRepository) DashboardCounts(ctx context.Context, monthStart time.Time) (*entity.DashboardCounts, error) {
	counts := &entity.DashboardCounts{}
	db := repo.db.WithContext(ctx)

	type orderAgg struct {
		TotalOrders  int64
		OpenOrders   int64
		TotalRevenue int64
		MonthRevenue int64
	}
	var orders orderAgg
	if err := db.Model(&model.OrderModel{}).
		Select(
			"COUNT(*) AS total_orders, "+
				"COUNT(*) FILTER (WHERE status <> ?) AS open_orders, "+
				"COALESCE(SUM(price) FILTER (WHERE payment_status = ?), 0) AS total_revenue, "+
				"COALESCE(SUM(price) FILTER (WHERE payment_status = ? AND created_at >= ?), 0) AS month_revenue",
			string(entity.OrderStatusCompleted),
			string(entity.PaymentStatusCompleted),
			string(entity.PaymentStatusCompleted), monthStart,
		).
		Scan(&orders).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders")
	}
	counts.TotalOrders = orders.TotalOrders
	counts.OpenOrders = orders.OpenOrders
	counts.TotalRevenue = orders.TotalRevenue
	counts.MonthRevenue = orders.MonthRevenue

	type roleCount struct {
		Role  string
		Count int64
	}
	var roles []roleCount
	if err := db.Model(&model.AccountModel{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&roles).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count accounts by role")
	}
	for _, rc := range roles {
		switch entity.Role(rc.Role) {
		case entity.RoleClient:
			counts.TotalClients = rc.Count
		case entity.RoleEmployee:
			counts.TotalEmployees = rc.Count
		case entity.RoleStudent:
			counts.TotalStudents = rc.Count
		}
	}

	type projectAgg struct {
		TotalProjects     int64
		CompletedProjects int64
	}
	var projects projectAgg
	if err := db.Model(&model.ProjectModel{}).
		Select(
			"COUNT(*) AS total_projects, "+
				"COUNT(*) FILTER (WHERE status = ?) AS completed_projects",
			string(entity.ProjectStatusCompleted),
		).
		Scan(&projects).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate projects")
	}
	counts.TotalProjects = projects.TotalProjects
	counts.CompletedProjects = projects.CompletedProjects

	if err := db.Model(&model.EnrollmentModel{}).
		Count(&counts.TotalEnrollments).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count enrollments")
	}

	return counts, nil
}
