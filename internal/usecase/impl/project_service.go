package impl

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type projectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	TaskRepo    repository.TaskRepository
}

// NewProjectService creates a new project service instance.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		projectRepo: params.ProjectRepo,
		taskRepo:    params.TaskRepo,
	}
}

// CreateProject opens a project at the first pipeline stage.
func (s *projectService) CreateProject(ctx context.Context, input usecase.CreateProjectInput) (*entity.Project, error) {
	now := time.Now()
	project := &entity.Project{
		ID:            uuid.New(),
		ClientID:      input.ClientID,
		Name:          input.Name,
		Description:   input.Description,
		Status:        entity.ProjectStatusAnalysis,
		DaysRemaining: input.DaysRemaining,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.projectRepo.CreateProject(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	return project, nil
}

// GetProject retrieves a project by id.
func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return project, nil
}

// ListProjects retrieves all projects, newest first.
func (s *projectService) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

// ListProjectsByClient retrieves one client's projects.
func (s *projectService) ListProjectsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Project, error) {
	projects, err := s.projectRepo.ListProjectsByClient(ctx, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects by client")
	}

	return projects, nil
}

// AdvanceProjectStatus moves a project forward through the pipeline. The
// current stage is read first so backward and same-stage moves are rejected
// before any write.
func (s *projectService) AdvanceProjectStatus(ctx context.Context, id uuid.UUID, target entity.ProjectStatus) error {
	project, err := s.projectRepo.FindProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return domainerrors.ErrProjectNotFound
		}

		return errors.Wrap(err, "failed to find project")
	}

	if !project.Status.CanAdvanceTo(target) {
		return domainerrors.ErrInvalidStatusTransition
	}

	if err := s.projectRepo.UpdateProjectStatus(ctx, id, target); err != nil {
		return errors.Wrap(err, "failed to update project status")
	}

	return nil
}

// SetProjectDaysRemaining updates the staff-maintained counter.
func (s *projectService) SetProjectDaysRemaining(ctx context.Context, id uuid.UUID, days int) error {
	if err := s.projectRepo.UpdateProjectDaysRemaining(ctx, id, days); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return domainerrors.ErrProjectNotFound
		}

		return errors.Wrap(err, "failed to update days remaining")
	}

	return nil
}

// CreateTask assigns a unit of work to an employee.
func (s *projectService) CreateTask(ctx context.Context, input usecase.CreateTaskInput) (*entity.EmployeeTask, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, input.ProjectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	now := time.Now()
	task := &entity.EmployeeTask{
		ID:             uuid.New(),
		EmployeeID:     input.EmployeeID,
		ProjectID:      input.ProjectID,
		Title:          input.Title,
		HoursRemaining: input.HoursRemaining,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}

	return task, nil
}

// ListTasksByEmployee retrieves an employee's tasks.
func (s *projectService) ListTasksByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.EmployeeTask, error) {
	tasks, err := s.taskRepo.ListTasksByEmployee(ctx, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by employee")
	}

	return tasks, nil
}

// ListTasksByProject retrieves a project's tasks.
func (s *projectService) ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.EmployeeTask, error) {
	tasks, err := s.taskRepo.ListTasksByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by project")
	}

	return tasks, nil
}

// UpdateTaskProgress updates remaining hours and the completion flag.
func (s *projectService) UpdateTaskProgress(ctx context.Context, id uuid.UUID, hoursRemaining int, completed bool) error {
	if err := s.taskRepo.UpdateTaskProgress(ctx, id, hoursRemaining, completed); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound
		}

		return errors.Wrap(err, "failed to update task progress")
	}

	return nil
}
