// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"agency/internal/domain/entity"
)

// ReportRepository exposes the aggregates each backend can compute closest to
// the data. The relational backend pushes counting and summing into SQL; the
// in-memory and document backends scan their collections. The semantics are
// identical either way.
type ReportRepository interface {
	// DashboardCounts computes the dashboard aggregates. monthStart bounds
	// the month-revenue window (revenue where payment completed and
	// created_at >= monthStart).
	DashboardCounts(ctx context.Context, monthStart time.Time) (*entity.DashboardCounts, error)
}
