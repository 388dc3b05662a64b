// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agency/internal/domain/entity"
	"agency/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when an email is already registered
	// within the same role namespace.
	ErrDuplicateEmail = errors.New("email already registered for this role")
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
)

// AccountRepository defines operations for account persistence. Clients,
// employees and students share the account shape but live in separate login
// namespaces: email uniqueness is scoped by role.
type AccountRepository interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, account *entity.Account) error

	// FindAccountByID retrieves an account by its id.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAccountByEmail retrieves an account by (role, email), the natural
	// key of the role-scoped namespace.
	FindAccountByEmail(ctx context.Context, role entity.Role, email string) (*entity.Account, error)

	// ListAccountsByRole retrieves all accounts of one role.
	ListAccountsByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)

	// CountAccountsByRole reports the number of accounts of one role.
	CountAccountsByRole(ctx context.Context, role entity.Role) (int64, error)
}

// SessionRepository stores server-side login sessions in the active backend.
type SessionRepository interface {
	// CreateSession persists a new session.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByID retrieves a session by its id.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// DeleteSession removes a session (logout).
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
