package postgres

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// CreateConversation persists a new conversation. The (project, client)
// unique index keeps one thread per pair.
func (repo *chatRepository) CreateConversation(ctx context.Context, conv *entity.ChatConversation) error {
	if conv.ID == uuid.Nil {
		conv.ID = uuid.New()
	}
	if conv.LastActivityAt.IsZero() {
		conv.LastActivityAt = time.Now()
	}

	convM := fromConversationDomain(conv)

	if err := repo.db.WithContext(ctx).Create(convM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("conversation already exists for this project and client")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	conv.CreatedAt = convM.CreatedAt

	return nil
}

// FindConversationByID retrieves a conversation by its id.
func (repo *chatRepository) FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error) {
	var convM model.ChatConversationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&convM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by ID")
	}

	return toConversationDomain(&convM), nil
}

// FindConversationByKey retrieves a conversation by its natural key.
func (repo *chatRepository) FindConversationByKey(ctx context.Context, projectID, clientID uuid.UUID) (*entity.ChatConversation, error) {
	var convM model.ChatConversationModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ? AND client_id = ?", projectID, clientID).
		First(&convM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by key")
	}

	return toConversationDomain(&convM), nil
}

// ListConversationsByClient retrieves a client's conversations ordered by
// last activity descending.
func (repo *chatRepository) ListConversationsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.ChatConversation, error) {
	var convMs []model.ChatConversationModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("last_activity_at DESC").
		Find(&convMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list conversations by client")
	}

	convs := make([]*entity.ChatConversation, 0, len(convMs))
	for i := range convMs {
		convs = append(convs, toConversationDomain(&convMs[i]))
	}

	return convs, nil
}

// CreateMessage appends a message to a conversation.
func (repo *chatRepository) CreateMessage(ctx context.Context, msg *entity.ChatMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}

	msgM := fromMessageDomain(msg)

	if err := repo.db.WithContext(ctx).Create(msgM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	msg.CreatedAt = msgM.CreatedAt

	return nil
}

// ListMessages retrieves a conversation's messages ordered by creation time
// ascending.
func (repo *chatRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*entity.ChatMessage, error) {
	var msgMs []model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&msgMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	msgs := make([]*entity.ChatMessage, 0, len(msgMs))
	for i := range msgMs {
		msgs = append(msgs, toMessageDomain(&msgMs[i]))
	}

	return msgs, nil
}

// TouchConversation sets the conversation's last-activity timestamp.
func (repo *chatRepository) TouchConversation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChatConversationModel{}).
		Where("id = ?", id).
		Update("last_activity_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch conversation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// MarkMessagesRead marks as read every message whose sender role differs from
// readerRole.
func (repo *chatRepository) MarkMessagesRead(ctx context.Context, conversationID uuid.UUID, readerRole entity.Role) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ChatMessageModel{}).
		Where("conversation_id = ? AND sender_role <> ? AND read = ?", conversationID, string(readerRole), false).
		Update("read", true).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark messages read")
	}

	return nil
}

func fromConversationDomain(conv *entity.ChatConversation) *model.ChatConversationModel {
	return &model.ChatConversationModel{
		ID:             conv.ID,
		ProjectID:      conv.ProjectID,
		ClientID:       conv.ClientID,
		EmployeeID:     conv.EmployeeID,
		LastActivityAt: conv.LastActivityAt,
		CreatedAt:      conv.CreatedAt,
	}
}

func toConversationDomain(convM *model.ChatConversationModel) *entity.ChatConversation {
	return &entity.ChatConversation{
		ID:             convM.ID,
		ProjectID:      convM.ProjectID,
		ClientID:       convM.ClientID,
		EmployeeID:     convM.EmployeeID,
		LastActivityAt: convM.LastActivityAt,
		CreatedAt:      convM.CreatedAt,
	}
}

func fromMessageDomain(msg *entity.ChatMessage) *model.ChatMessageModel {
	return &model.ChatMessageModel{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		SenderRole:     string(msg.SenderRole),
		Body:           msg.Body,
		Read:           msg.Read,
		CreatedAt:      msg.CreatedAt,
	}
}

func toMessageDomain(msgM *model.ChatMessageModel) *entity.ChatMessage {
	return &entity.ChatMessage{
		ID:             msgM.ID,
		ConversationID: msgM.ConversationID,
		SenderID:       msgM.SenderID,
		SenderRole:     entity.Role(msgM.SenderRole),
		Body:           msgM.Body,
		Read:           msgM.Read,
		CreatedAt:      msgM.CreatedAt,
	}
}
