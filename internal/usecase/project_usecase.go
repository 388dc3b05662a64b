package usecase

import (
	"context"

	"agency/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProjectInput carries the fields needed to open a project.
type CreateProjectInput struct {
	ClientID      uuid.UUID
	Name          string
	Description   string
	DaysRemaining int
}

// CreateTaskInput carries the fields needed to assign a task.
type CreateTaskInput struct {
	EmployeeID     uuid.UUID
	ProjectID      uuid.UUID
	Title          string
	HoursRemaining int
}

// ProjectUsecase defines the interface for project delivery and employee
// tasks.
type ProjectUsecase interface {
	// CreateProject opens a project at the first pipeline stage.
	CreateProject(ctx context.Context, input CreateProjectInput) (*entity.Project, error)

	// GetProject retrieves a project by id.
	GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// ListProjects retrieves all projects, newest first. Staff only.
	ListProjects(ctx context.Context) ([]*entity.Project, error)

	// ListProjectsByClient retrieves one client's projects.
	ListProjectsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Project, error)

	// AdvanceProjectStatus moves a project forward through the pipeline.
	// Backward or same-stage transitions are rejected.
	AdvanceProjectStatus(ctx context.Context, id uuid.UUID, target entity.ProjectStatus) error

	// SetProjectDaysRemaining updates the staff-maintained counter.
	SetProjectDaysRemaining(ctx context.Context, id uuid.UUID, days int) error

	// CreateTask assigns a unit of work to an employee.
	CreateTask(ctx context.Context, input CreateTaskInput) (*entity.EmployeeTask, error)

	// ListTasksByEmployee retrieves an employee's tasks.
	ListTasksByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.EmployeeTask, error)

	// ListTasksByProject retrieves a project's tasks.
	ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.EmployeeTask, error)

	// UpdateTaskProgress updates remaining hours and the completion flag.
	UpdateTaskProgress(ctx context.Context, id uuid.UUID, hoursRemaining int, completed bool) error
}
