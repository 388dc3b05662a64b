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

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// CreateModificationRequest persists a new modification request.
func (repo *requestRepository) CreateModificationRequest(ctx context.Context, req *entity.ModificationRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	reqM := fromModificationRequestDomain(req)

	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create modification request")
	}

	req.CreatedAt = reqM.CreatedAt
	req.UpdatedAt = reqM.UpdatedAt

	return nil
}

// ListModificationRequestsByProject retrieves requests for one project
// ordered by creation time descending.
func (repo *requestRepository) ListModificationRequestsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.ModificationRequest, error) {
	var reqMs []model.ModificationRequestModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&reqMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list modification requests")
	}

	reqs := make([]*entity.ModificationRequest, 0, len(reqMs))
	for i := range reqMs {
		reqs = append(reqs, toModificationRequestDomain(&reqMs[i]))
	}

	return reqs, nil
}

// UpdateModificationRequestStatus moves the request through its pipeline.
func (repo *requestRepository) UpdateModificationRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ModificationRequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update modification request status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// CreateFeatureRequest persists a new feature request. Estimates start at
// zero; only SetFeatureRequestEstimate writes them.
func (repo *requestRepository) CreateFeatureRequest(ctx context.Context, req *entity.FeatureRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	reqM := fromFeatureRequestDomain(req)

	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create feature request")
	}

	req.CreatedAt = reqM.CreatedAt
	req.UpdatedAt = reqM.UpdatedAt

	return nil
}

// ListFeatureRequestsByProject retrieves feature requests for one project
// ordered by creation time descending.
func (repo *requestRepository) ListFeatureRequestsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.FeatureRequest, error) {
	var reqMs []model.FeatureRequestModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&reqMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feature requests")
	}

	reqs := make([]*entity.FeatureRequest, 0, len(reqMs))
	for i := range reqMs {
		reqs = append(reqs, toFeatureRequestDomain(&reqMs[i]))
	}

	return reqs, nil
}

// UpdateFeatureRequestStatus moves the feature request through its pipeline.
func (repo *requestRepository) UpdateFeatureRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FeatureRequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update feature request status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// SetFeatureRequestEstimate records the staff-set cost and duration.
func (repo *requestRepository) SetFeatureRequestEstimate(ctx context.Context, id uuid.UUID, cost int64, days int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FeatureRequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"estimated_cost": cost,
			"estimated_days": days,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set feature request estimate")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

func fromModificationRequestDomain(req *entity.ModificationRequest) *model.ModificationRequestModel {
	return &model.ModificationRequestModel{
		ID:          req.ID,
		ProjectID:   req.ProjectID,
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}
}

func toModificationRequestDomain(reqM *model.ModificationRequestModel) *entity.ModificationRequest {
	return &entity.ModificationRequest{
		ID:          reqM.ID,
		ProjectID:   reqM.ProjectID,
		ClientID:    reqM.ClientID,
		Title:       reqM.Title,
		Description: reqM.Description,
		Status:      entity.RequestStatus(reqM.Status),
		CreatedAt:   reqM.CreatedAt,
		UpdatedAt:   reqM.UpdatedAt,
	}
}

func fromFeatureRequestDomain(req *entity.FeatureRequest) *model.FeatureRequestModel {
	return &model.FeatureRequestModel{
		ID:            req.ID,
		ProjectID:     req.ProjectID,
		ClientID:      req.ClientID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        string(req.Status),
		EstimatedCost: req.EstimatedCost,
		EstimatedDays: req.EstimatedDays,
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

func toFeatureRequestDomain(reqM *model.FeatureRequestModel) *entity.FeatureRequest {
	return &entity.FeatureRequest{
		ID:            reqM.ID,
		ProjectID:     reqM.ProjectID,
		ClientID:      reqM.ClientID,
		Title:         reqM.Title,
		Description:   reqM.Description,
		Status:        entity.RequestStatus(reqM.Status),
		EstimatedCost: reqM.EstimatedCost,
		EstimatedDays: reqM.EstimatedDays,
		CreatedAt:     reqM.CreatedAt,
		UpdatedAt:     reqM.UpdatedAt,
	}
}
