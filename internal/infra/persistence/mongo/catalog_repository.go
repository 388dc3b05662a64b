package mongo

import (
	"context"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *mongo.Database
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *mongo.Database) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindServiceByID retrieves a single service by its id.
func (repo *catalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var doc serviceDocument

	err := repo.db.Collection(collServices).
		FindOne(ctx, bson.M{"_id": id.String()}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return doc.toDomain()
}

// ListServices retrieves the full catalog ordered by name.
func (repo *catalogRepository) ListServices(ctx context.Context) ([]*entity.Service, error) {
	cursor, err := repo.db.Collection(collServices).
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}
	defer cursor.Close(ctx)

	var docs []serviceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode services")
	}

	services := make([]*entity.Service, 0, len(docs))
	for i := range docs {
		service, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	return services, nil
}

// CreateService adds a catalog item.
func (repo *catalogRepository) CreateService(ctx context.Context, service *entity.Service) error {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}

	if _, err := repo.db.Collection(collServices).
		InsertOne(ctx, fromServiceDomain(service)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrConflict.WrapMessage("service name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	return nil
}

// CountServices reports the catalog size.
func (repo *catalogRepository) CountServices(ctx context.Context) (int64, error) {
	count, err := repo.db.Collection(collServices).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count services")
	}

	return count, nil
}

// FindDiscountCodeByCode retrieves a discount code by its natural key.
func (repo *catalogRepository) FindDiscountCodeByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	var doc discountCodeDocument

	err := repo.db.Collection(collDiscountCodes).
		FindOne(ctx, bson.M{"code": code}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDiscountCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount code")
	}

	return doc.toDomain()
}

// CreateDiscountCode adds a discount code.
func (repo *catalogRepository) CreateDiscountCode(ctx context.Context, code *entity.DiscountCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}

	if _, err := repo.db.Collection(collDiscountCodes).
		InsertOne(ctx, fromDiscountCodeDomain(code)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrConflict.WrapMessage("discount code already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create discount code")
	}

	return nil
}
