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

func newProjectService(store *memory.Store) usecase.ProjectUsecase {
	return NewProjectService(ProjectServiceParams{
		ProjectRepo: store,
		TaskRepo:    store,
	})
}

func TestProjectService_CreateProject_StartsAtAnalysis(t *testing.T) {
	svc := newProjectService(newTestStore())

	project, err := svc.CreateProject(context.Background(), usecase.CreateProjectInput{
		ClientID:      uuid.New(),
		Name:          "Storefront rebuild",
		DaysRemaining: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusAnalysis, project.Status)
	assert.Equal(t, 30, project.DaysRemaining)
}

func TestProjectService_AdvanceProjectStatus_ForwardOnly(t *testing.T) {
	svc := newProjectService(newTestStore())
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, usecase.CreateProjectInput{
		ClientID: uuid.New(),
		Name:     "Storefront rebuild",
	})
	require.NoError(t, err)

	// Forward moves are legal, including skipping stages.
	require.NoError(t, svc.AdvanceProjectStatus(ctx, project.ID, entity.ProjectStatusBackend))

	// Same stage and backward moves are rejected.
	err = svc.AdvanceProjectStatus(ctx, project.ID, entity.ProjectStatusBackend)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	err = svc.AdvanceProjectStatus(ctx, project.ID, entity.ProjectStatusAnalysis)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	// Unknown stages are rejected.
	err = svc.AdvanceProjectStatus(ctx, project.ID, entity.ProjectStatus("shipping"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	current, err := svc.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusBackend, current.Status)
}

func TestProjectService_AdvanceProjectStatus_Unknown(t *testing.T) {
	svc := newProjectService(newTestStore())

	err := svc.AdvanceProjectStatus(context.Background(), uuid.New(), entity.ProjectStatusDesign)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_CreateTask_RequiresProject(t *testing.T) {
	store := newTestStore()
	svc := newProjectService(store)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, usecase.CreateTaskInput{
		EmployeeID: uuid.New(),
		ProjectID:  uuid.New(),
		Title:      "Wireframes",
	})
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)

	project, err := svc.CreateProject(ctx, usecase.CreateProjectInput{
		ClientID: uuid.New(),
		Name:     "Storefront rebuild",
	})
	require.NoError(t, err)

	employeeID := uuid.New()
	task, err := svc.CreateTask(ctx, usecase.CreateTaskInput{
		EmployeeID:     employeeID,
		ProjectID:      project.ID,
		Title:          "Wireframes",
		HoursRemaining: 8,
	})
	require.NoError(t, err)
	assert.False(t, task.Completed)

	require.NoError(t, svc.UpdateTaskProgress(ctx, task.ID, 2, true))

	tasks, err := svc.ListTasksByEmployee(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
	assert.Equal(t, 2, tasks[0].HoursRemaining)
}
