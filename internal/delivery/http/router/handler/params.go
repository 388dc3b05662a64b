// Package handler contains the HTTP handlers for the application.
package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"agency/internal/delivery/http/middleware"
	"agency/internal/domain/entity"
)

// parseUUIDField parses a uuid carried in a request body field.
func parseUUIDField(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// pathUUID parses a uuid path parameter. The bool reports success; on
// failure the 400 response has already been written.
func pathUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// accountID returns the authenticated account id set by the auth middleware.
func accountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(middleware.ContextAccountID).(uuid.UUID)

	return id, ok
}

// sessionID returns the authenticated session id set by the auth middleware.
func sessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(middleware.ContextSessionID).(uuid.UUID)

	return id, ok
}

// accountRole returns the authenticated role set by the auth middleware.
func accountRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(middleware.ContextRole).(entity.Role)

	return role, ok
}
