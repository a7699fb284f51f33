package repository

import (
	"context"

	"gorm.io/gorm"

	"tripvista/internal/model"
)

// TestimonialRepository defines testimonial persistence operations.
type TestimonialRepository interface {
	Create(ctx context.Context, t *model.Testimonial) error
	Update(ctx context.Context, t *model.Testimonial) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Testimonial, error)
	List(ctx context.Context) ([]model.Testimonial, error)
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new testimonial repository.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	return translate(r.db.WithContext(ctx).Create(t).Error)
}

func (r *testimonialRepository) Update(ctx context.Context, t *model.Testimonial) error {
	return translate(r.db.WithContext(ctx).Save(t).Error)
}

func (r *testimonialRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Testimonial{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uint) (*model.Testimonial, error) {
	var t model.Testimonial
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *testimonialRepository) List(ctx context.Context) ([]model.Testimonial, error) {
	var ts []model.Testimonial
	if err := r.db.WithContext(ctx).Find(&ts).Error; err != nil {
		return nil, translate(err)
	}
	return ts, nil
}
