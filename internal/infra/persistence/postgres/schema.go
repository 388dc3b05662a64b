package postgres

import (
	"context"

	"agency/internal/errors"
	"agency/internal/infra/persistence/model"
	"agency/internal/infra/persistence/seed"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnsureSchema migrates every persistence model. AutoMigrate is additive and
// safe to run on every boot.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.ServiceModel{},
		&model.DiscountCodeModel{},
		&model.OrderModel{},
		&model.InvoiceModel{},
		&model.AccountModel{},
		&model.SessionModel{},
		&model.ProjectModel{},
		&model.EmployeeTaskModel{},
		&model.ModificationRequestModel{},
		&model.FeatureRequestModel{},
		&model.ChatConversationModel{},
		&model.ChatMessageModel{},
		&model.CourseModel{},
		&model.EnrollmentModel{},
		&model.LessonProgressModel{},
		&model.QuizAttemptModel{},
		&model.CertificateModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate PostgreSQL schema")
	}

	return nil
}

// EnsureSeedData installs the canonical catalog idempotently. Each insert
// targets the row's natural key with ON CONFLICT DO NOTHING, so rerunning the
// seed never duplicates rows or overwrites edits made since.
func EnsureSeedData(ctx context.Context, db *gorm.DB) error {
	services := make([]*model.ServiceModel, 0, len(seed.Services()))
	for _, svc := range seed.Services() {
		m, err := fromServiceDomain(svc)
		if err != nil {
			return err
		}
		services = append(services, m)
	}
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&services).Error; err != nil {
		return errors.Wrap(err, "failed to seed services")
	}

	codes := make([]*model.DiscountCodeModel, 0, len(seed.DiscountCodes()))
	for _, code := range seed.DiscountCodes() {
		codes = append(codes, fromDiscountCodeDomain(code))
	}
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(&codes).Error; err != nil {
		return errors.Wrap(err, "failed to seed discount codes")
	}

	courses := make([]*model.CourseModel, 0, len(seed.Courses()))
	for _, course := range seed.Courses() {
		courses = append(courses, fromCourseDomain(course))
	}
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "title"}}, DoNothing: true}).
		Create(&courses).Error; err != nil {
		return errors.Wrap(err, "failed to seed courses")
	}

	return nil
}
