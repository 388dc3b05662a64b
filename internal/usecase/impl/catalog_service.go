package impl

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
	}
}

// ListServices retrieves the full catalog.
func (s *catalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

// GetService retrieves a single service by id.
func (s *catalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := s.catalogRepo.FindServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return svc, nil
}

// ValidateDiscount checks a code against the current time. Unknown codes are
// reported as invalid, not as errors, so checkout flows degrade gracefully.
func (s *catalogService) ValidateDiscount(ctx context.Context, code string) (*usecase.DiscountValidation, error) {
	discount, err := s.catalogRepo.FindDiscountCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountCodeNotFound) {
			return &usecase.DiscountValidation{}, nil
		}

		return nil, errors.Wrap(err, "failed to find discount code")
	}

	if !discount.ValidAt(time.Now()) {
		return &usecase.DiscountValidation{}, nil
	}

	return &usecase.DiscountValidation{Valid: true, Percent: discount.Percent}, nil
}
