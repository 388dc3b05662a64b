package impl

import (
	"context"
	"testing"

	domainerrors "agency/internal/domain/errors"
	"agency/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListServices_Seeded(t *testing.T) {
	svc := NewCatalogService(CatalogServiceParams{CatalogRepo: newTestStore()})

	services, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, 6)
}

func TestCatalogService_GetService_NotFound(t *testing.T) {
	svc := NewCatalogService(CatalogServiceParams{CatalogRepo: newTestStore()})

	_, err := svc.GetService(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestCatalogService_ValidateDiscount(t *testing.T) {
	svc := NewCatalogService(CatalogServiceParams{CatalogRepo: newTestStore()})
	ctx := context.Background()

	tests := []struct {
		name    string
		code    string
		valid   bool
		percent int
	}{
		{name: "active without expiry", code: "WELCOME10", valid: true, percent: 10},
		{name: "active with future expiry", code: "LAUNCH20", valid: true, percent: 20},
		{name: "inactive", code: "LEGACY15", valid: false},
		{name: "unknown", code: "NOSUCHCODE", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validation, err := svc.ValidateDiscount(ctx, tt.code)
			require.NoError(t, err)
			assert.Equal(t, &usecase.DiscountValidation{Valid: tt.valid, Percent: tt.percent}, validation)
		})
	}
}
