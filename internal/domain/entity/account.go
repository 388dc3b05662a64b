// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which login namespace an account belongs to. A given email
// is unique only within its role, not globally.
type Role string

const (
	RoleClient   Role = "client"
	RoleEmployee Role = "employee"
	RoleStudent  Role = "student"
)

// Account is a credentialed account holder: a client ordering services, an
// employee delivering projects, or a student enrolled in courses. Accounts are
// created once at registration and never deleted.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is a server-side login session stored in the active backend.
// Sessions carry a fixed 24 hour expiry with no sliding renewal.
type Session struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its fixed expiry.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
