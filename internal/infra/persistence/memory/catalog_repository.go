package memory

import (
	"context"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/google/uuid"
)

// FindServiceByID retrieves a single service by its id.
func (s *Store) FindServiceByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, repository.ErrServiceNotFound
	}

	return cloneService(svc), nil
}

// ListServices retrieves the full catalog.
func (s *Store) ListServices(_ context.Context) ([]*entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	services := make([]*entity.Service, 0, len(s.services))
	for _, svc := range s.services {
		services = append(services, cloneService(svc))
	}
	sortByTimeAsc(services, func(svc *entity.Service) time.Time { return svc.CreatedAt })

	return services, nil
}

// CreateService adds a catalog item.
func (s *Store) CreateService(_ context.Context, service *entity.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	if service.CreatedAt.IsZero() {
		service.CreatedAt = time.Now()
	}
	s.services[service.ID] = cloneService(service)

	return nil
}

// CountServices reports the catalog size.
func (s *Store) CountServices(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.services)), nil
}

// FindDiscountCodeByCode retrieves a discount code by its natural key.
func (s *Store) FindDiscountCodeByCode(_ context.Context, code string) (*entity.DiscountCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.findDiscountByCodeLocked(code)
	if d == nil {
		return nil, repository.ErrDiscountCodeNotFound
	}

	return cloneDiscountCode(d), nil
}

// CreateDiscountCode adds a discount code.
func (s *Store) CreateDiscountCode(_ context.Context, code *entity.DiscountCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}
	s.discountCodes[code.ID] = cloneDiscountCode(code)

	return nil
}
