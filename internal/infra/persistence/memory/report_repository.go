package memory

import (
	"context"
	"time"

	"agency/internal/domain/entity"
)

// DashboardCounts computes the dashboard aggregates by scanning the maps.
// The relational backend pushes the same semantics into SQL.
func (s *Store) DashboardCounts(_ context.Context, monthStart time.Time) (*entity.DashboardCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := &entity.DashboardCounts{}

	for _, order := range s.orders {
		counts.TotalOrders++
		if order.Status != entity.OrderStatusCompleted {
			counts.OpenOrders++
		}
		if order.Paid() {
			counts.TotalRevenue += order.Price
			if !order.CreatedAt.Before(monthStart) {
				counts.MonthRevenue += order.Price
			}
		}
	}

	for _, account := range s.accounts {
		switch account.Role {
		case entity.RoleClient:
			counts.TotalClients++
		case entity.RoleEmployee:
			counts.TotalEmployees++
		case entity.RoleStudent:
			counts.TotalStudents++
		}
	}

	for _, project := range s.projects {
		counts.TotalProjects++
		if project.Status == entity.ProjectStatusCompleted {
			counts.CompletedProjects++
		}
	}

	counts.TotalEnrollments = int64(len(s.enrollments))

	return counts, nil
}
