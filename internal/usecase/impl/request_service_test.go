package impl

import (
	"context"
	"testing"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/infra/persistence/memory"
	"agency/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestFixture(t *testing.T) (usecase.RequestUsecase, *entity.Project, *memory.Store) {
	t.Helper()

	store := newTestStore()
	projects := newProjectService(store)
	project, err := projects.CreateProject(context.Background(), usecase.CreateProjectInput{
		ClientID: uuid.New(),
		Name:     "Storefront rebuild",
	})
	require.NoError(t, err)

	svc := NewRequestService(RequestServiceParams{
		RequestRepo: store,
		ProjectRepo: store,
	})

	return svc, project, store
}

func TestRequestService_CreateModificationRequest(t *testing.T) {
	svc, project, _ := newRequestFixture(t)
	ctx := context.Background()

	req, err := svc.CreateModificationRequest(ctx, usecase.CreateRequestInput{
		ProjectID:   project.ID,
		ClientID:    project.ClientID,
		Title:       "Move the search bar",
		Description: "Header instead of sidebar",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, req.Status)

	reqs, err := svc.ListModificationRequests(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
}

func TestRequestService_CreateRequest_RequiresProject(t *testing.T) {
	svc, _, _ := newRequestFixture(t)

	_, err := svc.CreateModificationRequest(context.Background(), usecase.CreateRequestInput{
		ProjectID: uuid.New(),
		Title:     "Orphan",
	})
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)

	_, err = svc.CreateFeatureRequest(context.Background(), usecase.CreateRequestInput{
		ProjectID: uuid.New(),
		Title:     "Orphan",
	})
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestRequestService_UpdateStatus_RejectsUnknown(t *testing.T) {
	svc, project, _ := newRequestFixture(t)
	ctx := context.Background()

	req, err := svc.CreateModificationRequest(ctx, usecase.CreateRequestInput{
		ProjectID: project.ID,
		ClientID:  project.ClientID,
		Title:     "Move the search bar",
	})
	require.NoError(t, err)

	err = svc.UpdateModificationRequestStatus(ctx, req.ID, entity.RequestStatus("archived"))
	require.Error(t, err)

	require.NoError(t, svc.UpdateModificationRequestStatus(ctx, req.ID, entity.RequestStatusApproved))

	reqs, err := svc.ListModificationRequests(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, entity.RequestStatusApproved, reqs[0].Status)
}

func TestRequestService_FeatureRequest_EstimatesStartAtZero(t *testing.T) {
	svc, project, _ := newRequestFixture(t)
	ctx := context.Background()

	req, err := svc.CreateFeatureRequest(ctx, usecase.CreateRequestInput{
		ProjectID: project.ID,
		ClientID:  project.ClientID,
		Title:     "Wishlist",
	})
	require.NoError(t, err)
	assert.Zero(t, req.EstimatedCost)
	assert.Zero(t, req.EstimatedDays)

	// Staff set the estimate later.
	require.NoError(t, svc.EstimateFeatureRequest(ctx, req.ID, 45000, 12))

	reqs, err := svc.ListFeatureRequests(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, int64(45000), reqs[0].EstimatedCost)
	assert.Equal(t, 12, reqs[0].EstimatedDays)
}

func TestRequestService_EstimateFeatureRequest_RejectsNegative(t *testing.T) {
	svc, project, _ := newRequestFixture(t)
	ctx := context.Background()

	req, err := svc.CreateFeatureRequest(ctx, usecase.CreateRequestInput{
		ProjectID: project.ID,
		ClientID:  project.ClientID,
		Title:     "Wishlist",
	})
	require.NoError(t, err)

	assert.Error(t, svc.EstimateFeatureRequest(ctx, req.ID, -1, 5))
	assert.Error(t, svc.EstimateFeatureRequest(ctx, req.ID, 1000, -5))
}
