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

type requestService struct {
	requestRepo repository.RequestRepository
	projectRepo repository.ProjectRepository
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	RequestRepo repository.RequestRepository
	ProjectRepo repository.ProjectRepository
}

// NewRequestService creates a new request service instance.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo: params.RequestRepo,
		projectRepo: params.ProjectRepo,
	}
}

// CreateModificationRequest submits a change request against a project.
func (s *requestService) CreateModificationRequest(ctx context.Context, input usecase.CreateRequestInput) (*entity.ModificationRequest, error) {
	if err := s.checkProject(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	req := &entity.ModificationRequest{
		ID:          uuid.New(),
		ProjectID:   input.ProjectID,
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		Status:      entity.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.requestRepo.CreateModificationRequest(ctx, req); err != nil {
		return nil, errors.Wrap(err, "failed to create modification request")
	}

	return req, nil
}

// ListModificationRequests retrieves a project's modification requests.
func (s *requestService) ListModificationRequests(ctx context.Context, projectID uuid.UUID) ([]*entity.ModificationRequest, error) {
	reqs, err := s.requestRepo.ListModificationRequestsByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list modification requests")
	}

	return reqs, nil
}

// UpdateModificationRequestStatus moves a request through its pipeline.
func (s *requestService) UpdateModificationRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	if !entity.KnownRequestStatus(status) {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown request status")
	}

	if err := s.requestRepo.UpdateModificationRequestStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to update modification request status")
	}

	return nil
}

// CreateFeatureRequest submits a feature proposal. Client-supplied estimates
// never survive; staff set them later through EstimateFeatureRequest.
func (s *requestService) CreateFeatureRequest(ctx context.Context, input usecase.CreateRequestInput) (*entity.FeatureRequest, error) {
	if err := s.checkProject(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	req := &entity.FeatureRequest{
		ID:          uuid.New(),
		ProjectID:   input.ProjectID,
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		Status:      entity.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.requestRepo.CreateFeatureRequest(ctx, req); err != nil {
		return nil, errors.Wrap(err, "failed to create feature request")
	}

	return req, nil
}

// ListFeatureRequests retrieves a project's feature requests.
func (s *requestService) ListFeatureRequests(ctx context.Context, projectID uuid.UUID) ([]*entity.FeatureRequest, error) {
	reqs, err := s.requestRepo.ListFeatureRequestsByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feature requests")
	}

	return reqs, nil
}

// UpdateFeatureRequestStatus moves a feature request through its pipeline.
func (s *requestService) UpdateFeatureRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	if !entity.KnownRequestStatus(status) {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown request status")
	}

	if err := s.requestRepo.UpdateFeatureRequestStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to update feature request status")
	}

	return nil
}

// EstimateFeatureRequest records the staff-set cost and duration.
func (s *requestService) EstimateFeatureRequest(ctx context.Context, id uuid.UUID, cost int64, days int) error {
	if cost < 0 || days < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("estimate must not be negative")
	}

	if err := s.requestRepo.SetFeatureRequestEstimate(ctx, id, cost, days); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to set feature request estimate")
	}

	return nil
}

// checkProject verifies the target project exists. The capability gap of the
// request store itself surfaces later, from the request repository.
func (s *requestService) checkProject(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return domainerrors.ErrProjectNotFound
		}

		return errors.Wrap(err, "failed to find project")
	}

	return nil
}
