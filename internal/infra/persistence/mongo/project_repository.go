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

// projectRepository implements the repository.ProjectRepository interface.
type projectRepository struct {
	db *mongo.Database
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *mongo.Database) repository.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// CreateProject persists a new project owned by one client.
func (repo *projectRepository) CreateProject(ctx context.Context, project *entity.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	if project.UpdatedAt.IsZero() {
		project.UpdatedAt = now
	}

	if _, err := repo.db.Collection(collProjects).
		InsertOne(ctx, fromProjectDomain(project)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	return nil
}

// FindProjectByID retrieves a project by its id.
func (repo *projectRepository) FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var doc projectDocument

	err := repo.db.Collection(collProjects).
		FindOne(ctx, bson.M{"_id": id.String()}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by ID")
	}

	return doc.toDomain()
}

// ListProjects retrieves all projects ordered by creation time descending.
func (repo *projectRepository) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	return repo.list(ctx, bson.M{})
}

// ListProjectsByClient retrieves the projects owned by one client.
func (repo *projectRepository) ListProjectsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Project, error) {
	return repo.list(ctx, bson.M{"client_id": clientID.String()})
}

func (repo *projectRepository) list(ctx context.Context, filter bson.M) ([]*entity.Project, error) {
	cursor, err := repo.db.Collection(collProjects).
		Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}
	defer cursor.Close(ctx)

	var docs []projectDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode projects")
	}

	projects := make([]*entity.Project, 0, len(docs))
	for i := range docs {
		project, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// UpdateProjectStatus moves the project to a new pipeline stage.
func (repo *projectRepository) UpdateProjectStatus(ctx context.Context, id uuid.UUID, status entity.ProjectStatus) error {
	return repo.update(ctx, id, bson.M{
		"status":     string(status),
		"updated_at": time.Now(),
	}, "failed to update project status")
}

// UpdateProjectDaysRemaining sets the externally maintained counter.
func (repo *projectRepository) UpdateProjectDaysRemaining(ctx context.Context, id uuid.UUID, days int) error {
	return repo.update(ctx, id, bson.M{
		"days_remaining": days,
		"updated_at":     time.Now(),
	}, "failed to update project days remaining")
}

func (repo *projectRepository) update(ctx context.Context, id uuid.UUID, set bson.M, failMsg string) error {
	result, err := repo.db.Collection(collProjects).
		UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, failMsg)
	}
	if result.MatchedCount == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}
