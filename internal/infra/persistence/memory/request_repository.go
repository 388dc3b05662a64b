package memory

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateModificationRequest persists a new modification request.
func (s *Store) CreateModificationRequest(_ context.Context, req *entity.ModificationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	now := time.Now()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = now
	s.modRequests[req.ID] = cloneModificationRequest(req)

	return nil
}

// ListModificationRequestsByProject retrieves requests for one project.
func (s *Store) ListModificationRequestsByProject(_ context.Context, projectID uuid.UUID) ([]*entity.ModificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reqs []*entity.ModificationRequest
	for _, req := range s.modRequests {
		if req.ProjectID == projectID {
			reqs = append(reqs, cloneModificationRequest(req))
		}
	}
	sortByTimeDesc(reqs, func(r *entity.ModificationRequest) time.Time { return r.CreatedAt })

	return reqs, nil
}

// UpdateModificationRequestStatus moves the request through its pipeline.
func (s *Store) UpdateModificationRequestStatus(_ context.Context, id uuid.UUID, status entity.RequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.modRequests[id]
	if !ok {
		return repository.ErrRequestNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()

	return nil
}

// CreateFeatureRequest persists a new feature request.
func (s *Store) CreateFeatureRequest(_ context.Context, req *entity.FeatureRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	now := time.Now()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = now
	s.featRequests[req.ID] = cloneFeatureRequest(req)

	return nil
}

// ListFeatureRequestsByProject retrieves feature requests for one project.
func (s *Store) ListFeatureRequestsByProject(_ context.Context, projectID uuid.UUID) ([]*entity.FeatureRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reqs []*entity.FeatureRequest
	for _, req := range s.featRequests {
		if req.ProjectID == projectID {
			reqs = append(reqs, cloneFeatureRequest(req))
		}
	}
	sortByTimeDesc(reqs, func(r *entity.FeatureRequest) time.Time { return r.CreatedAt })

	return reqs, nil
}

// UpdateFeatureRequestStatus moves the feature request through its pipeline.
func (s *Store) UpdateFeatureRequestStatus(_ context.Context, id uuid.UUID, status entity.RequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.featRequests[id]
	if !ok {
		return repository.ErrRequestNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()

	return nil
}

// SetFeatureRequestEstimate records the staff-set cost and duration.
func (s *Store) SetFeatureRequestEstimate(_ context.Context, id uuid.UUID, cost int64, days int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.featRequests[id]
	if !ok {
		return repository.ErrRequestNotFound
	}
	req.EstimatedCost = cost
	req.EstimatedDays = days
	req.UpdatedAt = time.Now()

	return nil
}
