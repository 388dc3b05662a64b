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

// taskRepository implements the repository.TaskRepository interface.
type taskRepository struct {
	db *mongo.Database
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *mongo.Database) repository.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// CreateTask persists a new task bound to one employee and one project.
func (repo *taskRepository) CreateTask(ctx context.Context, task *entity.EmployeeTask) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = now
	}

	if _, err := repo.db.Collection(collTasks).
		InsertOne(ctx, fromTaskDomain(task)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	return nil
}

// FindTaskByID retrieves a task by its id.
func (repo *taskRepository) FindTaskByID(ctx context.Context, id uuid.UUID) (*entity.EmployeeTask, error) {
	var doc taskDocument

	err := repo.db.Collection(collTasks).
		FindOne(ctx, bson.M{"_id": id.String()}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by ID")
	}

	return doc.toDomain()
}

// ListTasksByEmployee retrieves all tasks assigned to one employee.
func (repo *taskRepository) ListTasksByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.EmployeeTask, error) {
	return repo.list(ctx, bson.M{"employee_id": employeeID.String()})
}

// ListTasksByProject retrieves all tasks belonging to one project.
func (repo *taskRepository) ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.EmployeeTask, error) {
	return repo.list(ctx, bson.M{"project_id": projectID.String()})
}

func (repo *taskRepository) list(ctx context.Context, filter bson.M) ([]*entity.EmployeeTask, error) {
	cursor, err := repo.db.Collection(collTasks).
		Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}
	defer cursor.Close(ctx)

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode tasks")
	}

	tasks := make([]*entity.EmployeeTask, 0, len(docs))
	for i := range docs {
		task, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// UpdateTaskProgress updates remaining hours and the completion flag.
func (repo *taskRepository) UpdateTaskProgress(ctx context.Context, id uuid.UUID, hoursRemaining int, completed bool) error {
	result, err := repo.db.Collection(collTasks).
		UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": bson.M{
			"hours_remaining": hoursRemaining,
			"completed":       completed,
			"updated_at":      time.Now(),
		}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update task progress")
	}
	if result.MatchedCount == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}
