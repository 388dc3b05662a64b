// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"agency/internal/domain/entity"
	domainerrors "agency/internal/domain/errors"
	"agency/internal/domain/repository"
	"agency/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindServiceByID retrieves a single service by its id.
func (repo *catalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return toServiceDomain(&serviceM)
}

// ListServices retrieves the full catalog ordered by name.
func (repo *catalogRepository) ListServices(ctx context.Context) ([]*entity.Service, error) {
	var serviceMs []model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&serviceMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceMs))
	for i := range serviceMs {
		service, err := toServiceDomain(&serviceMs[i])
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	return services, nil
}

// CreateService adds a catalog item.
func (repo *catalogRepository) CreateService(ctx context.Context, service *entity.Service) error {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}

	serviceM, err := fromServiceDomain(service)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("service name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.CreatedAt = serviceM.CreatedAt

	return nil
}

// CountServices reports the catalog size.
func (repo *catalogRepository) CountServices(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count services")
	}

	return count, nil
}

// FindDiscountCodeByCode retrieves a discount code by its natural key.
func (repo *catalogRepository) FindDiscountCodeByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	var codeM model.DiscountCodeModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount code")
	}

	return toDiscountCodeDomain(&codeM), nil
}

// CreateDiscountCode adds a discount code.
func (repo *catalogRepository) CreateDiscountCode(ctx context.Context, code *entity.DiscountCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}

	codeM := fromDiscountCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("discount code already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create discount code")
	}

	code.CreatedAt = codeM.CreatedAt

	return nil
}

func fromServiceDomain(service *entity.Service) (*model.ServiceModel, error) {
	features, err := json.Marshal(service.Features)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode service features")
	}

	return &model.ServiceModel{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Category:    service.Category,
		Price:       service.Price,
		Features:    features,
		IsActive:    service.IsActive,
		CreatedAt:   service.CreatedAt,
	}, nil
}

func toServiceDomain(serviceM *model.ServiceModel) (*entity.Service, error) {
	var features []string
	if len(serviceM.Features) > 0 {
		if err := json.Unmarshal(serviceM.Features, &features); err != nil {
			return nil, errors.Wrap(err, "failed to decode service features")
		}
	}

	return &entity.Service{
		ID:          serviceM.ID,
		Name:        serviceM.Name,
		Description: serviceM.Description,
		Category:    serviceM.Category,
		Price:       serviceM.Price,
		Features:    features,
		IsActive:    serviceM.IsActive,
		CreatedAt:   serviceM.CreatedAt,
	}, nil
}

func fromDiscountCodeDomain(code *entity.DiscountCode) *model.DiscountCodeModel {
	return &model.DiscountCodeModel{
		ID:        code.ID,
		Code:      code.Code,
		Percent:   code.Percent,
		IsActive:  code.IsActive,
		ExpiresAt: code.ExpiresAt,
		CreatedAt: code.CreatedAt,
	}
}

func toDiscountCodeDomain(codeM *model.DiscountCodeModel) *entity.DiscountCode {
	return &entity.DiscountCode{
		ID:        codeM.ID,
		Code:      codeM.Code,
		Percent:   codeM.Percent,
		IsActive:  codeM.IsActive,
		ExpiresAt: codeM.ExpiresAt,
		CreatedAt: codeM.CreatedAt,
	}
}
