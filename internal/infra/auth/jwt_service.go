// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"agency/config"
	"agency/internal/domain/entity"
	"agency/internal/domain/service"
)

// sessionTTL is the fixed lifetime of a login session. There is no sliding
// renewal: after 24 hours the client must log in again.
const sessionTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The token is a transport for the server-side session id, not the session itself.
type jwtService struct {
	secret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: cfg.SecretKey.Access}, nil
}

// GenerateToken creates a signed access token bound to a server-side session.
func (s *jwtService) GenerateToken(accountID, sessionID uuid.UUID, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  accountID.String(),
		"sid":  sessionID.String(),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks signature and expiry and extracts the session claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	accountID, err := parseUUIDClaim(claims, "sub")
	if err != nil {
		return nil, err
	}
	sessionID, err := parseUUIDClaim(claims, "sid")
	if err != nil {
		return nil, err
	}
	roleStr, _ := claims["role"].(string)

	return &service.SessionClaims{
		AccountID: accountID,
		SessionID: sessionID,
		Role:      entity.Role(roleStr),
	}, nil
}

// SessionTTL returns the fixed session lifetime.
func (s *jwtService) SessionTTL() time.Duration {
	return sessionTTL
}

func parseUUIDClaim(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	raw, ok := claims[key].(string)
	if !ok {
		return uuid.Nil, errors.Errorf("claim %q missing from token", key)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "claim %q is not a valid id", key)
	}

	return id, nil
}
