package impl

import (
	"context"
	"testing"

	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/entity"
	"agency/internal/domain/repository"
	"agency/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register(t *testing.T) {
	store := newTestStore()
	svc := NewAccountService(AccountServiceParams{
		AccountRepo: store,
		SessionRepo: store,
		Hasher:      newTestHasher(),
		Tokens:      newTestTokens(t),
	})
	ctx := context.Background()

	account, err := svc.Register(ctx, usecase.RegisterInput{
		Role:     entity.RoleClient,
		Name:     "Sara",
		Email:    "sara@example.com",
		Phone:    "555-0100",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, account.Role)
	assert.Equal(t, "sara@example.com", account.Email)
	assert.NotEmpty(t, account.PasswordHash)
	assert.NotEqual(t, "correct horse", account.PasswordHash)
}

func TestAccountService_Register_DuplicateEmailScopedByRole(t *testing.T) {
	store := newTestStore()
	svc := NewAccountService(AccountServiceParams{
		AccountRepo: store,
		SessionRepo: store,
		Hasher:      newTestHasher(),
		Tokens:      newTestTokens(t),
	})
	ctx := context.Background()

	input := usecase.RegisterInput{
		Role:     entity.RoleClient,
		Name:     "Sara",
		Email:    "sara@example.com",
		Password: "correct horse",
	}
	_, err := svc.Register(ctx, input)
	require.NoError(t, err)

	_, err = svc.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)

	// The same address is free in a different role namespace.
	input.Role = entity.RoleStudent
	_, err = svc.Register(ctx, input)
	assert.NoError(t, err)
}

func TestAccountService_Login(t *testing.T) {
	store := newTestStore()
	tokens := newTestTokens(t)
	svc := NewAccountService(AccountServiceParams{
		AccountRepo: store,
		SessionRepo: store,
		Hasher:      newTestHasher(),
		Tokens:      tokens,
	})
	ctx := context.Background()

	account, err := svc.Register(ctx, usecase.RegisterInput{
		Role:     entity.RoleClient,
		Name:     "Sara",
		Email:    "sara@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, entity.RoleClient, "sara@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, account.ID, result.Account.ID)
	require.NotEmpty(t, result.Token)

	claims, err := tokens.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, entity.RoleClient, claims.Role)

	// The token points at a live server-side session.
	session, err := store.FindSessionByID(ctx, claims.SessionID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, session.AccountID)
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	store := newTestStore()
	svc := NewAccountService(AccountServiceParams{
		AccountRepo: store,
		SessionRepo: store,
		Hasher:      newTestHasher(),
		Tokens:      newTestTokens(t),
	})
	ctx := context.Background()

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Role:     entity.RoleClient,
		Name:     "Sara",
		Email:    "sara@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	// Unknown email and wrong password are indistinguishable.
	_, err = svc.Login(ctx, entity.RoleClient, "sara@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, entity.RoleClient, "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	// Same email, wrong role namespace.
	_, err = svc.Login(ctx, entity.RoleEmployee, "sara@example.com", "correct horse")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Logout_DeletesSession(t *testing.T) {
	store := newTestStore()
	tokens := newTestTokens(t)
	svc := NewAccountService(AccountServiceParams{
		AccountRepo: store,
		SessionRepo: store,
		Hasher:      newTestHasher(),
		Tokens:      tokens,
	})
	ctx := context.Background()

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Role:     entity.RoleClient,
		Name:     "Sara",
		Email:    "sara@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, entity.RoleClient, "sara@example.com", "correct horse")
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(result.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.SessionID))

	_, err = store.FindSessionByID(ctx, claims.SessionID)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}
