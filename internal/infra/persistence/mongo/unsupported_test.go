package mongo

import (
	"context"
	"testing"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUnsupportedChatRepository(t *testing.T) {
	repo := NewChatRepository()
	ctx := context.Background()
	id := uuid.New()

	assert.ErrorIs(t, repo.CreateConversation(ctx, &entity.ChatConversation{}), repository.ErrNotSupported)
	assert.ErrorIs(t, repo.TouchConversation(ctx, id), repository.ErrNotSupported)
	assert.ErrorIs(t, repo.CreateMessage(ctx, &entity.ChatMessage{}), repository.ErrNotSupported)
	assert.ErrorIs(t, repo.MarkMessagesRead(ctx, id, entity.RoleClient), repository.ErrNotSupported)

	_, err := repo.FindConversationByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotSupported)
	_, err = repo.FindConversationByKey(ctx, id, id)
	assert.ErrorIs(t, err, repository.ErrNotSupported)
	_, err = repo.ListConversationsByClient(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotSupported)
	_, err = repo.ListMessages(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotSupported)
}

func TestUnsupportedRequestRepository(t *testing.T) {
	repo := NewRequestRepository()
	ctx := context.Background()
	id := uuid.New()

	assert.ErrorIs(t, repo.CreateModificationRequest(ctx, &entity.ModificationRequest{}), repository.ErrNotSupported)
	assert.ErrorIs(t, repo.UpdateModificationRequestStatus(ctx, id, entity.RequestStatusApproved), repository.ErrNotSupported)
	assert.ErrorIs(t, repo.CreateFeatureRequest(ctx, &entity.FeatureRequest{}), repository.ErrNotSupported)
	assert.ErrorIs(t, repo.UpdateFeatureRequestStatus(ctx, id, entity.RequestStatusApproved), repository.ErrNotSupported)
	assert.ErrorIs(t, repo.SetFeatureRequestEstimate(ctx, id, 1000, 5), repository.ErrNotSupported)

	_, err := repo.ListModificationRequestsByProject(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotSupported)
	_, err = repo.ListFeatureRequestsByProject(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotSupported)
}
