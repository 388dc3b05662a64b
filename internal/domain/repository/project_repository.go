// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agency/internal/domain/entity"
	"agency/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for project persistence.
var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound is returned when an employee task is not found.
	ErrTaskNotFound = errors.New("task not found")
)

// ProjectRepository defines operations for project persistence.
type ProjectRepository interface {
	// CreateProject persists a new project owned by one client.
	CreateProject(ctx context.Context, project *entity.Project) error

	// FindProjectByID retrieves a project by its id.
	FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// ListProjects retrieves all projects ordered by creation time descending.
	ListProjects(ctx context.Context) ([]*entity.Project, error)

	// ListProjectsByClient retrieves the projects owned by one client.
	ListProjectsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Project, error)

	// UpdateProjectStatus moves the project to a new pipeline stage.
	UpdateProjectStatus(ctx context.Context, id uuid.UUID, status entity.ProjectStatus) error

	// UpdateProjectDaysRemaining sets the externally maintained counter.
	UpdateProjectDaysRemaining(ctx context.Context, id uuid.UUID, days int) error
}

// TaskRepository defines operations for employee task persistence.
type TaskRepository interface {
	// CreateTask persists a new task bound to one employee and one project.
	CreateTask(ctx context.Context, task *entity.EmployeeTask) error

	// FindTaskByID retrieves a task by its id.
	FindTaskByID(ctx context.Context, id uuid.UUID) (*entity.EmployeeTask, error)

	// ListTasksByEmployee retrieves all tasks assigned to one employee.
	ListTasksByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.EmployeeTask, error)

	// ListTasksByProject retrieves all tasks belonging to one project.
	ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.EmployeeTask, error)

	// UpdateTaskProgress updates remaining hours and/or the completion flag.
	UpdateTaskProgress(ctx context.Context, id uuid.UUID, hoursRemaining int, completed bool) error
}
