package mongo

import (
	"context"

	"agency/internal/errors"
	"agency/internal/infra/persistence/seed"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureSeedData installs the canonical catalog idempotently. Each document
// is upserted against its natural key with $setOnInsert, so rerunning the
// seed never duplicates documents or overwrites edits made since.
func EnsureSeedData(ctx context.Context, db *mongo.Database) error {
	upsert := options.Update().SetUpsert(true)

	for _, svc := range seed.Services() {
		doc := fromServiceDomain(svc)
		if _, err := db.Collection(collServices).UpdateOne(ctx,
			bson.M{"name": doc.Name},
			bson.M{"$setOnInsert": doc},
			upsert,
		); err != nil {
			return errors.Wrap(err, "failed to seed services")
		}
	}

	for _, code := range seed.DiscountCodes() {
		doc := fromDiscountCodeDomain(code)
		if _, err := db.Collection(collDiscountCodes).UpdateOne(ctx,
			bson.M{"code": doc.Code},
			bson.M{"$setOnInsert": doc},
			upsert,
		); err != nil {
			return errors.Wrap(err, "failed to seed discount codes")
		}
	}

	for _, course := range seed.Courses() {
		doc := fromCourseDomain(course)
		if _, err := db.Collection(collCourses).UpdateOne(ctx,
			bson.M{"title": doc.Title},
			bson.M{"$setOnInsert": doc},
			upsert,
		); err != nil {
			return errors.Wrap(err, "failed to seed courses")
		}
	}

	return nil
}
