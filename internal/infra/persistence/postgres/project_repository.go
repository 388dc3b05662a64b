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

// projectRepository implements the repository.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// CreateProject persists a new project owned by one client.
func (repo *projectRepository) CreateProject(ctx context.Context, project *entity.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}

	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// FindProjectByID retrieves a project by its id.
func (repo *projectRepository) FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by ID")
	}

	return toProjectDomain(&projectM), nil
}

// ListProjects retrieves all projects ordered by creation time descending.
func (repo *projectRepository) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	var projectMs []model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&projectMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return toProjectDomains(projectMs), nil
}

// ListProjectsByClient retrieves the projects owned by one client.
func (repo *projectRepository) ListProjectsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Project, error) {
	var projectMs []model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&projectMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects by client")
	}

	return toProjectDomains(projectMs), nil
}

// UpdateProjectStatus moves the project to a new pipeline stage. Transition
// legality is validated by the caller before reaching the repository.
func (repo *projectRepository) UpdateProjectStatus(ctx context.Context, id uuid.UUID, status entity.ProjectStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// UpdateProjectDaysRemaining sets the externally maintained counter.
func (repo *projectRepository) UpdateProjectDaysRemaining(ctx context.Context, id uuid.UUID, days int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"days_remaining": days,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project days remaining")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func fromProjectDomain(project *entity.Project) *model.ProjectModel {
	return &model.ProjectModel{
		ID:            project.ID,
		ClientID:      project.ClientID,
		Name:          project.Name,
		Description:   project.Description,
		Status:        string(project.Status),
		DaysRemaining: project.DaysRemaining,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}

func toProjectDomain(projectM *model.ProjectModel) *entity.Project {
	return &entity.Project{
		ID:            projectM.ID,
		ClientID:      projectM.ClientID,
		Name:          projectM.Name,
		Description:   projectM.Description,
		Status:        entity.ProjectStatus(projectM.Status),
		DaysRemaining: projectM.DaysRemaining,
		CreatedAt:     projectM.CreatedAt,
		UpdatedAt:     projectM.UpdatedAt,
	}
}

func toProjectDomains(projectMs []model.ProjectModel) []*entity.Project {
	projects := make([]*entity.Project, 0, len(projectMs))
	for i := range projectMs {
		projects = append(projects, toProjectDomain(&projectMs[i]))
	}

	return projects
}
