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
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *mongo.Database
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// CreateSession persists a new session.
func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	if _, err := repo.db.Collection(collSessions).
		InsertOne(ctx, fromSessionDomain(session)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

// FindSessionByID retrieves a session by its id.
func (repo *sessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var doc sessionDocument

	err := repo.db.Collection(collSessions).
		FindOne(ctx, bson.M{"_id": id.String()}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by ID")
	}

	return doc.toDomain()
}

// DeleteSession removes a session. Deleting an absent session is not an
// error; logout is idempotent.
func (repo *sessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if _, err := repo.db.Collection(collSessions).
		DeleteOne(ctx, bson.M{"_id": id.String()}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}
