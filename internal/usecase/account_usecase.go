// Package usecase defines the application-layer interfaces and their
// input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"agency/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Role     entity.Role
	Name     string
	Email    string
	Phone    string
	Password string
}

// LoginResult bundles the authenticated account with its signed access
// token.
type LoginResult struct {
	Account *entity.Account
	Token   string
}

// AccountUsecase defines the interface for registration and authentication.
type AccountUsecase interface {
	// Register creates a new account. Email uniqueness is scoped by role:
	// the same address may register once per role namespace.
	Register(ctx context.Context, input RegisterInput) (*entity.Account, error)

	// Login verifies credentials, opens a server-side session with a fixed
	// 24 hour expiry and returns a token carrying the session id.
	Login(ctx context.Context, role entity.Role, email, password string) (*LoginResult, error)

	// Logout deletes the server-side session. It is idempotent.
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// GetAccount retrieves an account by id.
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// ListAccountsByRole retrieves all accounts of one role. Staff only.
	ListAccountsByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)
}
