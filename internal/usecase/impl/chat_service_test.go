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

func newChatFixture(t *testing.T) (usecase.ChatUsecase, *entity.Project, *memory.Store) {
	t.Helper()

	store := newTestStore()
	project, err := newProjectService(store).CreateProject(context.Background(), usecase.CreateProjectInput{
		ClientID: uuid.New(),
		Name:     "Storefront rebuild",
	})
	require.NoError(t, err)

	svc := NewChatService(ChatServiceParams{
		ChatRepo:    store,
		ProjectRepo: store,
		TxManager:   store,
	})

	return svc, project, store
}

func TestChatService_GetOrCreateConversation_Idempotent(t *testing.T) {
	svc, project, _ := newChatFixture(t)
	ctx := context.Background()

	first, err := svc.GetOrCreateConversation(ctx, project.ID, project.ClientID)
	require.NoError(t, err)

	second, err := svc.GetOrCreateConversation(ctx, project.ID, project.ClientID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	convs, err := svc.ListConversations(ctx, project.ClientID)
	require.NoError(t, err)
	assert.Len(t, convs, 1)
}

func TestChatService_GetOrCreateConversation_RequiresProject(t *testing.T) {
	svc, _, _ := newChatFixture(t)

	_, err := svc.GetOrCreateConversation(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestChatService_SendMessage_TouchesConversation(t *testing.T) {
	svc, project, _ := newChatFixture(t)
	ctx := context.Background()

	conv, err := svc.GetOrCreateConversation(ctx, project.ID, project.ClientID)
	require.NoError(t, err)

	msg, err := svc.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: conv.ID,
		SenderID:       project.ClientID,
		SenderRole:     entity.RoleClient,
		Body:           "How is the build going?",
	})
	require.NoError(t, err)
	assert.False(t, msg.Read)

	convs, err := svc.ListConversations(ctx, project.ClientID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.False(t, convs[0].LastActivityAt.Before(conv.LastActivityAt))
}

func TestChatService_SendMessage_RejectsEmptyBody(t *testing.T) {
	svc, project, _ := newChatFixture(t)
	ctx := context.Background()

	conv, err := svc.GetOrCreateConversation(ctx, project.ID, project.ClientID)
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: conv.ID,
		SenderID:       project.ClientID,
		SenderRole:     entity.RoleClient,
	})
	require.Error(t, err)
}

func TestChatService_GetMessages_MarksOtherSideRead(t *testing.T) {
	svc, project, _ := newChatFixture(t)
	ctx := context.Background()
	employeeID := uuid.New()

	conv, err := svc.GetOrCreateConversation(ctx, project.ID, project.ClientID)
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: conv.ID,
		SenderID:       project.ClientID,
		SenderRole:     entity.RoleClient,
		Body:           "How is the build going?",
	})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: conv.ID,
		SenderID:       employeeID,
		SenderRole:     entity.RoleEmployee,
		Body:           "Backend is done, starting deployment.",
	})
	require.NoError(t, err)

	// The employee reads: the client's message flips to read, their own
	// stays untouched.
	msgs, err := svc.GetMessages(ctx, conv.ID, entity.RoleEmployee)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, entity.RoleClient, msgs[0].SenderRole)
	assert.Equal(t, entity.RoleEmployee, msgs[1].SenderRole)

	again, err := svc.GetMessages(ctx, conv.ID, entity.RoleClient)
	require.NoError(t, err)
	assert.True(t, again[0].Read, "client message read by employee")
	assert.True(t, again[1].Read, "employee message read by client")
}
