package memory

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateConversation persists a new conversation.
func (s *Store) CreateConversation(_ context.Context, conv *entity.ChatConversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv.ID == uuid.Nil {
		conv.ID = uuid.New()
	}
	now := time.Now()
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = now
	}
	if conv.LastActivityAt.IsZero() {
		conv.LastActivityAt = now
	}
	s.conversations[conv.ID] = cloneConversation(conv)

	return nil
}

// FindConversationByID retrieves a conversation by its id.
func (s *Store) FindConversationByID(_ context.Context, id uuid.UUID) (*entity.ChatConversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, repository.ErrConversationNotFound
	}

	return cloneConversation(conv), nil
}

// FindConversationByKey retrieves a conversation by (project, client).
func (s *Store) FindConversationByKey(_ context.Context, projectID, clientID uuid.UUID) (*entity.ChatConversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, conv := range s.conversations {
		if conv.ProjectID == projectID && conv.ClientID == clientID {
			return cloneConversation(conv), nil
		}
	}

	return nil, repository.ErrConversationNotFound
}

// ListConversationsByClient retrieves a client's conversations ordered by
// last activity descending.
func (s *Store) ListConversationsByClient(_ context.Context, clientID uuid.UUID) ([]*entity.ChatConversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var convs []*entity.ChatConversation
	for _, conv := range s.conversations {
		if conv.ClientID == clientID {
			convs = append(convs, cloneConversation(conv))
		}
	}
	sortByTimeDesc(convs, func(c *entity.ChatConversation) time.Time { return c.LastActivityAt })

	return convs, nil
}

// CreateMessage appends a message to a conversation.
func (s *Store) CreateMessage(_ context.Context, msg *entity.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[msg.ConversationID]; !ok {
		return repository.ErrConversationNotFound
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	s.messages[msg.ID] = cloneMessage(msg)

	return nil
}

// ListMessages retrieves a conversation's messages ordered by creation time
// ascending.
func (s *Store) ListMessages(_ context.Context, conversationID uuid.UUID) ([]*entity.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var msgs []*entity.ChatMessage
	for _, msg := range s.messages {
		if msg.ConversationID == conversationID {
			msgs = append(msgs, cloneMessage(msg))
		}
	}
	sortByTimeAsc(msgs, func(m *entity.ChatMessage) time.Time { return m.CreatedAt })

	return msgs, nil
}

// TouchConversation sets the conversation's last-activity timestamp.
func (s *Store) TouchConversation(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return repository.ErrConversationNotFound
	}
	conv.LastActivityAt = time.Now()

	return nil
}

// MarkMessagesRead marks as read every message whose sender role differs
// from readerRole.
func (s *Store) MarkMessagesRead(_ context.Context, conversationID uuid.UUID, readerRole entity.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, msg := range s.messages {
		if msg.ConversationID == conversationID && msg.SenderRole != readerRole {
			msg.Read = true
		}
	}

	return nil
}
