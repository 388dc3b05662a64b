package postgres

import (
	"strings"

	"agency/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a unique constraint
// violation (SQLSTATE 23505). GORM translates most of these to
// ErrDuplicatedKey; the message check covers drivers that do not.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// isForeignKeyConstraintViolation reports whether err is a foreign key
// violation (SQLSTATE 23503).
func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "SQLSTATE 23503") ||
		strings.Contains(msg, "violates foreign key constraint")
}
