package repository

import (
	"context"

	"gorm.io/gorm"

	"tripvista/internal/model"
)

// ServiceRepository defines service offering persistence operations.
type ServiceRepository interface {
	Create(ctx context.Context, svc *model.Service) error
	Update(ctx context.Context, svc *model.Service) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, svc *model.Service) error {
	return translate(r.db.WithContext(ctx).Create(svc).Error)
}

func (r *serviceRepository) Update(ctx context.Context, svc *model.Service) error {
	return translate(r.db.WithContext(ctx).Save(svc).Error)
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Service{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uint) (*model.Service, error) {
	var svc model.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, translate(err)
	}
	return &svc, nil
}

func (r *serviceRepository) List(ctx context.Context) ([]model.Service, error) {
	var svcs []model.Service
	if err := r.db.WithContext(ctx).Find(&svcs).Error; err != nil {
		return nil, translate(err)
	}
	return svcs, nil
}
