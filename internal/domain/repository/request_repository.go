// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agency/internal/domain/entity"
	"agency/internal/errors"

	"github.com/google/uuid"
)

// ErrRequestNotFound is returned when a change request is not found.
var ErrRequestNotFound = errors.New("change request not found")

// RequestRepository defines operations for client-submitted change requests.
// The document backend does not implement this family: every call returns
// ErrNotSupported there.
type RequestRepository interface {
	// CreateModificationRequest persists a new modification request.
	CreateModificationRequest(ctx context.Context, req *entity.ModificationRequest) error

	// ListModificationRequestsByProject retrieves requests for one project.
	ListModificationRequestsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.ModificationRequest, error)

	// UpdateModificationRequestStatus moves the request through its pipeline.
	UpdateModificationRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error

	// CreateFeatureRequest persists a new feature request.
	CreateFeatureRequest(ctx context.Context, req *entity.FeatureRequest) error

	// ListFeatureRequestsByProject retrieves feature requests for one project.
	ListFeatureRequestsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.FeatureRequest, error)

	// UpdateFeatureRequestStatus moves the feature request through its pipeline.
	UpdateFeatureRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error

	// SetFeatureRequestEstimate records the staff-set cost and duration.
	SetFeatureRequestEstimate(ctx context.Context, id uuid.UUID, cost int64, days int) error
}
