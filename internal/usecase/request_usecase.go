package usecase

import (
	"context"

	"agency/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRequestInput carries the fields shared by both change request kinds.
type CreateRequestInput struct {
	ProjectID   uuid.UUID
	ClientID    uuid.UUID
	Title       string
	Description string
}

// RequestUsecase defines the interface for client-submitted change requests.
// On the document backend every operation fails with the backend's
// capability-gap error.
type RequestUsecase interface {
	// CreateModificationRequest submits a change request against a project.
	CreateModificationRequest(ctx context.Context, input CreateRequestInput) (*entity.ModificationRequest, error)

	// ListModificationRequests retrieves a project's modification requests.
	ListModificationRequests(ctx context.Context, projectID uuid.UUID) ([]*entity.ModificationRequest, error)

	// UpdateModificationRequestStatus moves a request through its pipeline.
	// Unknown statuses are rejected.
	UpdateModificationRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error

	// CreateFeatureRequest submits a feature proposal. Estimates always
	// start at zero regardless of client input.
	CreateFeatureRequest(ctx context.Context, input CreateRequestInput) (*entity.FeatureRequest, error)

	// ListFeatureRequests retrieves a project's feature requests.
	ListFeatureRequests(ctx context.Context, projectID uuid.UUID) ([]*entity.FeatureRequest, error)

	// UpdateFeatureRequestStatus moves a feature request through its
	// pipeline. Unknown statuses are rejected.
	UpdateFeatureRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error

	// EstimateFeatureRequest records the staff-set cost and duration.
	EstimateFeatureRequest(ctx context.Context, id uuid.UUID, cost int64, days int) error
}
