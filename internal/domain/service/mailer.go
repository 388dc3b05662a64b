// Package service defines interfaces for domain services.
package service

import "context"

// Mailer delivers customer notifications. Delivery is best-effort by
// contract: callers log failures and never retry or roll back committed
// writes because of them. Real delivery is an external collaborator; the
// default implementation only records the outgoing message.
type Mailer interface {
	// Send delivers a plain-text message to one recipient.
	Send(ctx context.Context, to, subject, body string) error
}
