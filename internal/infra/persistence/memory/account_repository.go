package memory

import (
	"context"
	"strings"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateAccount persists a new account. Email uniqueness is scoped by role.
func (s *Store) CreateAccount(_ context.Context, account *entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if existing.Role == account.Role && strings.EqualFold(existing.Email, account.Email) {
			return repository.ErrDuplicateEmail
		}
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	s.accounts[account.ID] = cloneAccount(account)

	return nil
}

// FindAccountByID retrieves an account by its id.
func (s *Store) FindAccountByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return cloneAccount(account), nil
}

// FindAccountByEmail retrieves an account by (role, email).
func (s *Store) FindAccountByEmail(_ context.Context, role entity.Role, email string) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Role == role && strings.EqualFold(account.Email, email) {
			return cloneAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

// ListAccountsByRole retrieves all accounts of one role.
func (s *Store) ListAccountsByRole(_ context.Context, role entity.Role) ([]*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var accounts []*entity.Account
	for _, account := range s.accounts {
		if account.Role == role {
			accounts = append(accounts, cloneAccount(account))
		}
	}
	sortByTimeAsc(accounts, func(a *entity.Account) time.Time { return a.CreatedAt })

	return accounts, nil
}

// CountAccountsByRole reports the number of accounts of one role.
func (s *Store) CountAccountsByRole(_ context.Context, role entity.Role) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, account := range s.accounts {
		if account.Role == role {
			n++
		}
	}

	return n, nil
}

// CreateSession persists a new session.
func (s *Store) CreateSession(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = cloneSession(session)

	return nil
}

// FindSessionByID retrieves a session by its id.
func (s *Store) FindSessionByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return cloneSession(session), nil
}

// DeleteSession removes a session.
func (s *Store) DeleteSession(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)

	return nil
}
