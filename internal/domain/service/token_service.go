// Package service defines interfaces for domain services.
package service

import (
	"time"

	"agency/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionClaims is the decoded content of an access token: the account, its
// role, and the server-side session the token is bound to.
type SessionClaims struct {
	AccountID uuid.UUID
	SessionID uuid.UUID
	Role      entity.Role
}

// TokenService signs and validates access tokens. Tokens only transport the
// session id; the session itself lives server-side in the active backend
// with a fixed 24 hour expiry.
type TokenService interface {
	// GenerateToken creates a signed access token for the given session.
	GenerateToken(accountID, sessionID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken verifies the signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*SessionClaims, error)

	// SessionTTL returns the fixed session lifetime.
	SessionTTL() time.Duration
}
