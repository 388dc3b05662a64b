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

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *mongo.Database
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// CreateAccount persists a new account. The compound (role, email) unique
// index enforces the role-scoped namespace.
func (repo *accountRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	if _, err := repo.db.Collection(collAccounts).
		InsertOne(ctx, fromAccountDomain(account)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return nil
}

// FindAccountByID retrieves an account by its id.
func (repo *accountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

// FindAccountByEmail retrieves an account by (role, email).
func (repo *accountRepository) FindAccountByEmail(ctx context.Context, role entity.Role, email string) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"role": string(role), "email": email})
}

func (repo *accountRepository) findOne(ctx context.Context, filter bson.M) (*entity.Account, error) {
	var doc accountDocument

	err := repo.db.Collection(collAccounts).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return doc.toDomain()
}

// ListAccountsByRole retrieves all accounts of one role ordered by creation
// time.
func (repo *accountRepository) ListAccountsByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	cursor, err := repo.db.Collection(collAccounts).
		Find(ctx, bson.M{"role": string(role)}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by role")
	}
	defer cursor.Close(ctx)

	var docs []accountDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode accounts")
	}

	accounts := make([]*entity.Account, 0, len(docs))
	for i := range docs {
		account, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// CountAccountsByRole reports the number of accounts of one role.
func (repo *accountRepository) CountAccountsByRole(ctx context.Context, role entity.Role) (int64, error) {
	count, err := repo.db.Collection(collAccounts).
		CountDocuments(ctx, bson.M{"role": string(role)})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count accounts by role")
	}

	return count, nil
}
