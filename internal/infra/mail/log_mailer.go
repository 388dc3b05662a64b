// Package mail provides the default Mailer implementation. Actual delivery is
// an external collaborator; this implementation records outgoing messages in
// the application log so the best-effort notification contract stays visible
// in development and tests.
package mail

import (
	"context"
	"log/slog"

	"agency/internal/domain/service"
)

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a Mailer that writes outgoing messages to the log.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

// Send records the message. It never fails.
func (m *logMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.LogAttrs(ctx, slog.LevelInfo, "outgoing mail",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("bodyBytes", len(body)),
	)

	return nil
}
