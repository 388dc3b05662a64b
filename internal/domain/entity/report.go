// Package entity contains the core business objects of the project.
package entity

// DashboardCounts are the backend-computed aggregates behind the admin
// dashboard. The relational backend computes these server-side; the other
// backends scan their collections.
type DashboardCounts struct {
	TotalOrders       int64 `json:"total_orders"`
	OpenOrders        int64 `json:"open_orders"`
	TotalRevenue      int64 `json:"total_revenue"`
	MonthRevenue      int64 `json:"month_revenue"`
	TotalClients      int64 `json:"total_clients"`
	TotalEmployees    int64 `json:"total_employees"`
	TotalStudents     int64 `json:"total_students"`
	TotalProjects     int64 `json:"total_projects"`
	CompletedProjects int64 `json:"completed_projects"`
	TotalEnrollments  int64 `json:"total_enrollments"`
}

// MonthPoint is one calendar-month bucket of a trailing time series. Year and
// Month key the bucket to avoid December/January ambiguity.
type MonthPoint struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// ServiceRevenue is one row of the top-services ranking.
type ServiceRevenue struct {
	ServiceName string `json:"service_name"`
	Orders      int64  `json:"orders"`
	Revenue     int64  `json:"revenue"`
}

// DashboardStats is the full dashboard payload: pushdown counts plus the
// derived series and percentages computed by the analytics layer.
type DashboardStats struct {
	DashboardCounts

	RevenueByMonth        []MonthPoint     `json:"revenue_by_month"`
	OrdersByMonth         []MonthPoint     `json:"orders_by_month"`
	ClientGrowthByMonth   []MonthPoint     `json:"client_growth_by_month"`
	TopServices           []ServiceRevenue `json:"top_services"`
	RevenueTrend          int              `json:"revenue_trend"`
	OrderCompletionRate   int              `json:"order_completion_rate"`
	ProjectCompletionRate int              `json:"project_completion_rate"`
}

// EmployeeProductivity is one row of the productivity report.
type EmployeeProductivity struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	TasksTotal     int    `json:"tasks_total"`
	TasksCompleted int    `json:"tasks_completed"`
	HoursRemaining int    `json:"hours_remaining"`
	CompletionRate int    `json:"completion_rate"`
}

// FinancialReport summarizes revenue for the admin reporting screen.
type FinancialReport struct {
	TotalRevenue   int64            `json:"total_revenue"`
	MonthRevenue   int64            `json:"month_revenue"`
	InvoiceCount   int64            `json:"invoice_count"`
	RevenueByMonth []MonthPoint     `json:"revenue_by_month"`
	TopServices    []ServiceRevenue `json:"top_services"`
}
