package usecase

import (
	"context"

	"agency/internal/domain/entity"

	"github.com/google/uuid"
)

// DiscountValidation is the outcome of checking a discount code.
type DiscountValidation struct {
	Valid   bool
	Percent int
}

// CatalogUsecase defines the interface for the public service catalog.
type CatalogUsecase interface {
	// ListServices retrieves the full catalog.
	ListServices(ctx context.Context) ([]*entity.Service, error)

	// GetService retrieves a single service by id.
	GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// ValidateDiscount checks a code against the current time. An unknown,
	// inactive or expired code yields Valid false with zero percent; it is
	// not an error.
	ValidateDiscount(ctx context.Context, code string) (*DiscountValidation, error)
}
