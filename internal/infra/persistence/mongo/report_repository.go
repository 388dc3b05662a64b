package mongo

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// reportRepository implements the repository.ReportRepository interface by
// scanning collections. The semantics match the SQL pushdown in the
// relational backend exactly.
type reportRepository struct {
	db *mongo.Database
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *mongo.Database) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// DashboardCounts computes the dashboard aggregates.
func (repo *reportRepository) DashboardCounts(ctx context.Context, monthStart time.Time) (*entity.DashboardCounts, error) {
	counts := &entity.DashboardCounts{}

	cursor, err := repo.db.Collection(collOrders).Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan orders")
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc orderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode order")
		}

		counts.TotalOrders++
		if entity.OrderStatus(doc.Status) != entity.OrderStatusCompleted {
			counts.OpenOrders++
		}
		if entity.PaymentStatus(doc.PaymentStatus) == entity.PaymentStatusCompleted {
			counts.TotalRevenue += doc.Price
			if !doc.CreatedAt.Before(monthStart) {
				counts.MonthRevenue += doc.Price
			}
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "order scan failed")
	}

	roleCounts := map[entity.Role]*int64{
		entity.RoleClient:   &counts.TotalClients,
		entity.RoleEmployee: &counts.TotalEmployees,
		entity.RoleStudent:  &counts.TotalStudents,
	}
	for role, target := range roleCounts {
		n, err := repo.db.Collection(collAccounts).
			CountDocuments(ctx, bson.M{"role": string(role)})
		if err != nil {
			return nil, errors.Wrap(err, "failed to count accounts by role")
		}
		*target = n
	}

	totalProjects, err := repo.db.Collection(collProjects).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count projects")
	}
	counts.TotalProjects = totalProjects

	completedProjects, err := repo.db.Collection(collProjects).
		CountDocuments(ctx, bson.M{"status": string(entity.ProjectStatusCompleted)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completed projects")
	}
	counts.CompletedProjects = completedProjects

	totalEnrollments, err := repo.db.Collection(collEnrollments).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count enrollments")
	}
	counts.TotalEnrollments = totalEnrollments

	return counts, nil
}
