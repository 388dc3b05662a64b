package mongo

import (
	"context"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
)

// The document backend does not implement chat or change requests. Every
// method returns repository.ErrNotSupported without touching the database, so
// callers see the capability gap immediately and uniformly. Callers must
// propagate the error, never translate it into an empty result.

// unsupportedChatRepository satisfies repository.ChatRepository.
type unsupportedChatRepository struct{}

// NewChatRepository returns the unsupported stand-in for this backend.
func NewChatRepository() repository.ChatRepository {
	return unsupportedChatRepository{}
}

func (unsupportedChatRepository) CreateConversation(context.Context, *entity.ChatConversation) error {
	return repository.ErrNotSupported
}

func (unsupportedChatRepository) FindConversationByID(context.Context, uuid.UUID) (*entity.ChatConversation, error) {
	return nil, repository.ErrNotSupported
}

func (unsupportedChatRepository) FindConversationByKey(context.Context, uuid.UUID, uuid.UUID) (*entity.ChatConversation, error) {
	return nil, repository.ErrNotSupported
}

func (unsupportedChatRepository) ListConversationsByClient(context.Context, uuid.UUID) ([]*entity.ChatConversation, error) {
	return nil, repository.ErrNotSupported
}

func (unsupportedChatRepository) CreateMessage(context.Context, *entity.ChatMessage) error {
	return repository.ErrNotSupported
}

func (unsupportedChatRepository) ListMessages(context.Context, uuid.UUID) ([]*entity.ChatMessage, error) {
	return nil, repository.ErrNotSupported
}

func (unsupportedChatRepository) TouchConversation(context.Context, uuid.UUID) error {
	return repository.ErrNotSupported
}

func (unsupportedChatRepository) MarkMessagesRead(context.Context, uuid.UUID, entity.Role) error {
	return repository.ErrNotSupported
}

// unsupportedRequestRepository satisfies repository.RequestRepository.
type unsupportedRequestRepository struct{}

// NewRequestRepository returns the unsupported stand-in for this backend.
func NewRequestRepository() repository.RequestRepository {
	return unsupportedRequestRepository{}
}

func (unsupportedRequestRepository) CreateModificationRequest(context.Context, *entity.ModificationRequest) error {
	return repository.ErrNotSupported
}

func (unsupportedRequestRepository) ListModificationRequestsByProject(context.Context, uuid.UUID) ([]*entity.ModificationRequest, error) {
	return nil, repository.ErrNotSupported
}

func (unsupportedRequestRepository) UpdateModificationRequestStatus(context.Context, uuid.UUID, entity.RequestStatus) error {
	return repository.ErrNotSupported
}

func (unsupportedRequestRepository) CreateFeatureRequest(context.Context, *entity.FeatureRequest) error {
	return repository.ErrNotSupported
}

func (unsupportedRequestRepository) ListFeatureRequestsByProject(context.Context, uuid.UUID) ([]*entity.FeatureRequest, error) {
	return nil, repository.ErrNotSupported
}

func (unsupportedRequestRepository) UpdateFeatureRequestStatus(context.Context, uuid.UUID, entity.RequestStatus) error {
	return repository.ErrNotSupported
}

func (unsupportedRequestRepository) SetFeatureRequestEstimate(context.Context, uuid.UUID, int64, int) error {
	return repository.ErrNotSupported
}
