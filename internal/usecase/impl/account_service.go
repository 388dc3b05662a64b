// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/domain/service"
	"agency/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accountService struct {
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
}

// NewAccountService creates a new account service instance.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
	}
}

// Register creates a new account in the role-scoped namespace.
func (s *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Account, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	account := &entity.Account{
		ID:           uuid.New(),
		Role:         input.Role,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.accountRepo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	return account, nil
}

// Login verifies credentials and opens a server-side session. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *accountService) Login(ctx context.Context, role entity.Role, email, password string) (*usecase.LoginResult, error) {
	account, err := s.accountRepo.FindAccountByEmail(ctx, role, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !s.hasher.Check(password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	now := time.Now()
	session := &entity.Session{
		ID:        uuid.New(),
		AccountID: account.ID,
		Role:      account.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokens.SessionTTL()),
	}
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	token, err := s.tokens.GenerateToken(account.ID, session.ID, account.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &usecase.LoginResult{Account: account, Token: token}, nil
}

// Logout deletes the server-side session.
func (s *accountService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// GetAccount retrieves an account by id.
func (s *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// ListAccountsByRole retrieves all accounts of one role.
func (s *accountService) ListAccountsByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByRole(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}
