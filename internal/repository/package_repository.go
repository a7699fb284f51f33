package repository

import (
	"context"

	"gorm.io/gorm"

	"tripvista/internal/model"
)

// PackageRepository defines travel package persistence operations.
type PackageRepository interface {
	Create(ctx context.Context, pkg *model.Package) error
	Update(ctx context.Context, pkg *model.Package) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Package, error)
	List(ctx context.Context) ([]model.Package, error)
	ListByType(ctx context.Context, packageType string) ([]model.Package, error)
}

type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository.
func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *model.Package) error {
	return translate(r.db.WithContext(ctx).Create(pkg).Error)
}

func (r *packageRepository) Update(ctx context.Context, pkg *model.Package) error {
	return translate(r.db.WithContext(ctx).Save(pkg).Error)
}

// Delete removes a package by id. Deleting a missing id yields ErrNotFound.
func (r *packageRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Package{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uint) (*model.Package, error) {
	var pkg model.Package
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, translate(err)
	}
	return &pkg, nil
}

func (r *packageRepository) List(ctx context.Context) ([]model.Package, error) {
	var pkgs []model.Package
	if err := r.db.WithContext(ctx).Find(&pkgs).Error; err != nil {
		return nil, translate(err)
	}
	return pkgs, nil
}

// ListByType returns packages whose type column equals packageType.
func (r *packageRepository) ListByType(ctx context.Context, packageType string) ([]model.Package, error) {
	var pkgs []model.Package
	err := r.db.WithContext(ctx).Where("type = ?", packageType).Find(&pkgs).Error
	if err != nil {
		return nil, translate(err)
	}
	return pkgs, nil
}
