package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountCode_ValidAt(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name string
		code DiscountCode
		want bool
	}{
		{"active without expiry", DiscountCode{IsActive: true}, true},
		{"active expiring later", DiscountCode{IsActive: true, ExpiresAt: &future}, true},
		{"active but expired", DiscountCode{IsActive: true, ExpiresAt: &past}, false},
		{"expiring exactly now", DiscountCode{IsActive: true, ExpiresAt: &now}, false},
		{"inactive without expiry", DiscountCode{IsActive: false}, false},
		{"inactive with future expiry", DiscountCode{IsActive: false, ExpiresAt: &future}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.ValidAt(now))
		})
	}
}
