package postgres

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// CreateTask persists a new task bound to one employee and one project.
func (repo *taskRepository) CreateTask(ctx context.Context, task *entity.EmployeeTask) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}

	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindTaskByID retrieves a task by its id.
func (repo *taskRepository) FindTaskByID(ctx context.Context, id uuid.UUID) (*entity.EmployeeTask, error) {
	var taskM model.EmployeeTaskModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by ID")
	}

	return toTaskDomain(&taskM), nil
}

// ListTasksByEmployee retrieves all tasks assigned to one employee.
func (repo *taskRepository) ListTasksByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.EmployeeTask, error) {
	var taskMs []model.EmployeeTaskModel

	if err := repo.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&taskMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by employee")
	}

	return toTaskDomains(taskMs), nil
}

// ListTasksByProject retrieves all tasks belonging to one project.
func (repo *taskRepository) ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.EmployeeTask, error) {
	var taskMs []model.EmployeeTaskModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&taskMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by project")
	}

	return toTaskDomains(taskMs), nil
}

// UpdateTaskProgress updates remaining hours and the completion flag.
func (repo *taskRepository) UpdateTaskProgress(ctx context.Context, id uuid.UUID, hoursRemaining int, completed bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmployeeTaskModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"hours_remaining": hoursRemaining,
			"completed":       completed,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task progress")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func fromTaskDomain(task *entity.EmployeeTask) *model.EmployeeTaskModel {
	return &model.EmployeeTaskModel{
		ID:             task.ID,
		EmployeeID:     task.EmployeeID,
		ProjectID:      task.ProjectID,
		Title:          task.Title,
		Completed:      task.Completed,
		HoursRemaining: task.HoursRemaining,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

func toTaskDomain(taskM *model.EmployeeTaskModel) *entity.EmployeeTask {
	return &entity.EmployeeTask{
		ID:             taskM.ID,
		EmployeeID:     taskM.EmployeeID,
		ProjectID:      taskM.ProjectID,
		Title:          taskM.Title,
		Completed:      taskM.Completed,
		HoursRemaining: taskM.HoursRemaining,
		CreatedAt:      taskM.CreatedAt,
		UpdatedAt:      taskM.UpdatedAt,
	}
}

func toTaskDomains(taskMs []model.EmployeeTaskModel) []*entity.EmployeeTask {
	tasks := make([]*entity.EmployeeTask, 0, len(taskMs))
	for i := range taskMs {
		tasks = append(tasks, toTaskDomain(&taskMs[i]))
	}

	return tasks
}
