// Package mongo contains the document-store implementation of the
// persistence layer. It covers orders, invoices, the catalog, accounts,
// sessions, projects, tasks and learning; chat and change requests are not
// implemented here and return repository.ErrNotSupported.
package mongo

import (
	"context"
	"log/slog"

	"agency/config"
	"agency/internal/domain/lifecycle"
	"agency/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names used by this backend.
const (
	collServices       = "services"
	collDiscountCodes  = "discount_codes"
	collOrders         = "orders"
	collInvoices       = "invoices"
	collAccounts       = "accounts"
	collSessions       = "sessions"
	collProjects       = "projects"
	collTasks          = "employee_tasks"
	collCourses        = "courses"
	collEnrollments    = "enrollments"
	collLessonProgress = "lesson_progress"
	collQuizAttempts   = "quiz_attempts"
	collCertificates   = "certificates"
)

// New creates the MongoDB database handle. On start it pings the server,
// creates indexes and installs the seed catalog; on stop it disconnects the
// client.
func New(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*mongo.Database, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Mongo.Database)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}
			if err := EnsureSeedData(ctx, db); err != nil {
				return err
			}

			logger.LogAttrs(ctx, slog.LevelInfo, "MongoDB connected",
				slog.String("database", cfg.Mongo.Database),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique indexes that back the same invariants the
// relational schema enforces.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		collServices: {
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		collDiscountCodes: {
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		collOrders: {
			Keys:    bson.D{{Key: "order_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		collInvoices: {
			Keys:    bson.D{{Key: "order_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		collAccounts: {
			Keys:    bson.D{{Key: "role", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		collEnrollments: {
			Keys:    bson.D{{Key: "student_id", Value: 1}, {Key: "course_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		collCourses: {
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		collCertificates: {
			Keys:    bson.D{{Key: "enrollment_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	for coll, index := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, index); err != nil {
			return errors.Wrapf(err, "failed to create index on %s", coll)
		}
	}

	return nil
}
