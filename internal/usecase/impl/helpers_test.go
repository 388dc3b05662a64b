package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"agency/config"
	"agency/internal/domain/service"
	"agency/internal/infra/auth"
	"agency/internal/infra/persistence/memory"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// The in-memory store implements every repository interface, so the service
// tests run against real persistence semantics instead of mocks.

func newTestStore() *memory.Store {
	return memory.New()
}

func newTestTokens(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokens
}

func newTestHasher() service.PasswordHasher {
	// Minimum cost keeps the suite fast.
	return auth.NewBcryptHasher(4)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingMailer captures sends and optionally fails every one of them.
type recordingMailer struct {
	sent []string
	fail bool
}

func (m *recordingMailer) Send(_ context.Context, to, _, _ string) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, to)

	return nil
}
