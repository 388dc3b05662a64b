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

type chatService struct {
	chatRepo    repository.ChatRepository
	projectRepo repository.ProjectRepository
	txManager   repository.TransactionManager
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo    repository.ChatRepository
	ProjectRepo repository.ProjectRepository
	TxManager   repository.TransactionManager
}

// NewChatService creates a new chat service instance.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo:    params.ChatRepo,
		projectRepo: params.ProjectRepo,
		txManager:   params.TxManager,
	}
}

// GetOrCreateConversation returns the conversation for a (project, client)
// pair, creating it on first use.
func (s *chatService) GetOrCreateConversation(ctx context.Context, projectID, clientID uuid.UUID) (*entity.ChatConversation, error) {
	conv, err := s.chatRepo.FindConversationByKey(ctx, projectID, clientID)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, repository.ErrConversationNotFound) {
		return nil, errors.Wrap(err, "failed to find conversation")
	}

	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	now := time.Now()
	conv = &entity.ChatConversation{
		ID:             uuid.New(),
		ProjectID:      projectID,
		ClientID:       clientID,
		LastActivityAt: now,
		CreatedAt:      now,
	}
	if err := s.chatRepo.CreateConversation(ctx, conv); err != nil {
		return nil, errors.Wrap(err, "failed to create conversation")
	}

	return conv, nil
}

// ListConversations retrieves a client's conversations, most recently active
// first.
func (s *chatService) ListConversations(ctx context.Context, clientID uuid.UUID) ([]*entity.ChatConversation, error) {
	convs, err := s.chatRepo.ListConversationsByClient(ctx, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return convs, nil
}

// SendMessage appends a message and touches the conversation's last activity
// in one transaction where the backend supports one.
func (s *chatService) SendMessage(ctx context.Context, input usecase.SendMessageInput) (*entity.ChatMessage, error) {
	if input.Body == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message body must not be empty")
	}

	if _, err := s.chatRepo.FindConversationByID(ctx, input.ConversationID); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	msg := &entity.ChatMessage{
		ID:             uuid.New(),
		ConversationID: input.ConversationID,
		SenderID:       input.SenderID,
		SenderRole:     input.SenderRole,
		Body:           input.Body,
		CreatedAt:      time.Now(),
	}

	err := s.txManager.Execute(ctx, func(repos repository.Atomic) error {
		if err := repos.Chat().CreateMessage(ctx, msg); err != nil {
			return errors.Wrap(err, "failed to create message")
		}

		return repos.Chat().TouchConversation(ctx, input.ConversationID)
	})
	if err != nil {
		return nil, err
	}

	return msg, nil
}

// GetMessages retrieves a conversation's messages in order and marks as read
// every message the reader did not send.
func (s *chatService) GetMessages(ctx context.Context, conversationID uuid.UUID, readerRole entity.Role) ([]*entity.ChatMessage, error) {
	msgs, err := s.chatRepo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	if err := s.chatRepo.MarkMessagesRead(ctx, conversationID, readerRole); err != nil {
		return nil, errors.Wrap(err, "failed to mark messages read")
	}

	return msgs, nil
}
