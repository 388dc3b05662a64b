package mongo

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *mongo.Database
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}

	if _, err := repo.db.Collection(collOrders).
		InsertOne(ctx, fromOrderDomain(order)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrConflict.WrapMessage("order number already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindOrderByID retrieves a single order by its opaque id.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

// FindOrderByNumber retrieves a single order by its natural key.
func (repo *orderRepository) FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return repo.findOne(ctx, bson.M{"order_number": orderNumber})
}

func (repo *orderRepository) findOne(ctx context.Context, filter bson.M) (*entity.Order, error) {
	var doc orderDocument

	err := repo.db.Collection(collOrders).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return doc.toDomain()
}

// ListOrders retrieves all orders ordered by creation time descending.
func (repo *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return repo.list(ctx, bson.M{})
}

// ListOrdersByCustomerEmail retrieves orders by the denormalized customer
// email.
func (repo *orderRepository) ListOrdersByCustomerEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	return repo.list(ctx, bson.M{"customer_email": email})
}

func (repo *orderRepository) list(ctx context.Context, filter bson.M) ([]*entity.Order, error) {
	cursor, err := repo.db.Collection(collOrders).
		Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	defer cursor.Close(ctx)

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, 0, len(docs))
	for i := range docs {
		order, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// UpdateOrderStatus moves the order through its delivery lifecycle.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return repo.update(ctx, id, bson.M{
		"status":     string(status),
		"updated_at": time.Now(),
	}, "failed to update order status")
}

// UpdateOrderPayment records the payment method and payment status.
func (repo *orderRepository) UpdateOrderPayment(ctx context.Context, id uuid.UUID, method string, status entity.PaymentStatus) error {
	return repo.update(ctx, id, bson.M{
		"payment_method": method,
		"payment_status": string(status),
		"updated_at":     time.Now(),
	}, "failed to update order payment")
}

func (repo *orderRepository) update(ctx context.Context, id uuid.UUID, set bson.M, failMsg string) error {
	result, err := repo.db.Collection(collOrders).
		UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, failMsg)
	}
	if result.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}
