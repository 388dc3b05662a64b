package auth

import (
	"testing"

	"agency/config"
	"agency/internal/domain/entity"
	"agency/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokens(t *testing.T, secret string) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	return tokens
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_Roundtrip(t *testing.T) {
	tokens := newTokens(t, "test-secret")
	accountID := uuid.New()
	sessionID := uuid.New()

	signed, err := tokens.GenerateToken(accountID, sessionID, entity.RoleClient)
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, entity.RoleClient, claims.Role)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	tokens := newTokens(t, "test-secret")
	other := newTokens(t, "another-secret")

	signed, err := other.GenerateToken(uuid.New(), uuid.New(), entity.RoleClient)
	require.NoError(t, err)

	_, err = tokens.ValidateToken(signed)
	require.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	tokens := newTokens(t, "test-secret")

	_, err := tokens.ValidateToken("not.a.token")
	require.Error(t, err)
}
