// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service is a catalog item clients can order. Read-mostly; orders reference
// services by id but tolerate a missing reference (see ServiceRef).
type Service struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	Features    []string  `json:"features"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// DiscountCode is a promotional code. Validity is a pure function of the
// current time: the code must be active and either carry no expiry or expire
// in the future.
type DiscountCode struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	Percent   int        `json:"percent"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// ValidAt reports whether the code can be applied at the given instant.
func (d *DiscountCode) ValidAt(now time.Time) bool {
	if !d.IsActive {
		return false
	}
	if d.ExpiresAt != nil && !d.ExpiresAt.After(now) {
		return false
	}

	return true
}
