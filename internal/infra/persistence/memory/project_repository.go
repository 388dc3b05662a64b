package memory

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateProject persists a new project.
func (s *Store) CreateProject(_ context.Context, project *entity.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now
	s.projects[project.ID] = cloneProject(project)

	return nil
}

// FindProjectByID retrieves a project by its id.
func (s *Store) FindProjectByID(_ context.Context, id uuid.UUID) (*entity.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}

	return cloneProject(project), nil
}

// ListProjects retrieves all projects ordered by creation time descending.
func (s *Store) ListProjects(_ context.Context) ([]*entity.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]*entity.Project, 0, len(s.projects))
	for _, project := range s.projects {
		projects = append(projects, cloneProject(project))
	}
	sortByTimeDesc(projects, func(p *entity.Project) time.Time { return p.CreatedAt })

	return projects, nil
}

// ListProjectsByClient retrieves the projects owned by one client.
func (s *Store) ListProjectsByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var projects []*entity.Project
	for _, project := range s.projects {
		if project.ClientID == clientID {
			projects = append(projects, cloneProject(project))
		}
	}
	sortByTimeDesc(projects, func(p *entity.Project) time.Time { return p.CreatedAt })

	return projects, nil
}

// UpdateProjectStatus moves the project to a new pipeline stage.
func (s *Store) UpdateProjectStatus(_ context.Context, id uuid.UUID, status entity.ProjectStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return repository.ErrProjectNotFound
	}
	project.Status = status
	project.UpdatedAt = time.Now()

	return nil
}

// UpdateProjectDaysRemaining sets the externally maintained counter.
func (s *Store) UpdateProjectDaysRemaining(_ context.Context, id uuid.UUID, days int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return repository.ErrProjectNotFound
	}
	project.DaysRemaining = days
	project.UpdatedAt = time.Now()

	return nil
}

// CreateTask persists a new employee task.
func (s *Store) CreateTask(_ context.Context, task *entity.EmployeeTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now
	s.tasks[task.ID] = cloneTask(task)

	return nil
}

// FindTaskByID retrieves a task by its id.
func (s *Store) FindTaskByID(_ context.Context, id uuid.UUID) (*entity.EmployeeTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	return cloneTask(task), nil
}

// ListTasksByEmployee retrieves all tasks assigned to one employee.
func (s *Store) ListTasksByEmployee(_ context.Context, employeeID uuid.UUID) ([]*entity.EmployeeTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*entity.EmployeeTask
	for _, task := range s.tasks {
		if task.EmployeeID == employeeID {
			tasks = append(tasks, cloneTask(task))
		}
	}
	sortByTimeAsc(tasks, func(t *entity.EmployeeTask) time.Time { return t.CreatedAt })

	return tasks, nil
}

// ListTasksByProject retrieves all tasks belonging to one project.
func (s *Store) ListTasksByProject(_ context.Context, projectID uuid.UUID) ([]*entity.EmployeeTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*entity.EmployeeTask
	for _, task := range s.tasks {
		if task.ProjectID == projectID {
			tasks = append(tasks, cloneTask(task))
		}
	}
	sortByTimeAsc(tasks, func(t *entity.EmployeeTask) time.Time { return t.CreatedAt })

	return tasks, nil
}

// UpdateTaskProgress updates remaining hours and the completion flag.
func (s *Store) UpdateTaskProgress(_ context.Context, id uuid.UUID, hoursRemaining int, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return repository.ErrTaskNotFound
	}
	task.HoursRemaining = hoursRemaining
	task.Completed = completed
	task.UpdatedAt = time.Now()

	return nil
}
