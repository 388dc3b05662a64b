// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agency/internal/domain/entity"
	"agency/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrServiceNotFound is returned when a catalog service is not found.
	ErrServiceNotFound = errors.New("service not found")
	// ErrDiscountCodeNotFound is returned when a discount code is not found.
	ErrDiscountCodeNotFound = errors.New("discount code not found")
)

// CatalogRepository defines operations over the service catalog and discount
// codes. The catalog is read-mostly; rows originate from seeding.
type CatalogRepository interface {
	// FindServiceByID retrieves a single service by its id.
	FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// ListServices retrieves the full catalog.
	ListServices(ctx context.Context) ([]*entity.Service, error)

	// CreateService adds a catalog item. Used by seeding and staff tooling.
	CreateService(ctx context.Context, service *entity.Service) error

	// CountServices reports the catalog size. Seeding uses it to detect an
	// empty catalog on first boot.
	CountServices(ctx context.Context) (int64, error)

	// FindDiscountCodeByCode retrieves a discount code by its natural key.
	FindDiscountCodeByCode(ctx context.Context, code string) (*entity.DiscountCode, error)

	// CreateDiscountCode adds a discount code.
	CreateDiscountCode(ctx context.Context, code *entity.DiscountCode) error
}
