package repository

import (
	"context"

	"gorm.io/gorm"

	"tripvista/internal/model"
)

// TeamMemberRepository defines staff profile persistence operations.
type TeamMemberRepository interface {
	Create(ctx context.Context, m *model.TeamMember) error
	Update(ctx context.Context, m *model.TeamMember) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.TeamMember, error)
	List(ctx context.Context) ([]model.TeamMember, error)
	ListByHead(ctx context.Context, isHead bool) ([]model.TeamMember, error)
}

type teamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository.
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (r *teamMemberRepository) Create(ctx context.Context, m *model.TeamMember) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *teamMemberRepository) Update(ctx context.Context, m *model.TeamMember) error {
	return translate(r.db.WithContext(ctx).Save(m).Error)
}

func (r *teamMemberRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.TeamMember{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *teamMemberRepository) FindByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	var m model.TeamMember
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *teamMemberRepository) List(ctx context.Context) ([]model.TeamMember, error) {
	var ms []model.TeamMember
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, translate(err)
	}
	return ms, nil
}

// ListByHead returns members filtered on the is_head flag.
func (r *teamMemberRepository) ListByHead(ctx context.Context, isHead bool) ([]model.TeamMember, error) {
	var ms []model.TeamMember
	err := r.db.WithContext(ctx).Where("is_head = ?", isHead).Find(&ms).Error
	if err != nil {
		return nil, translate(err)
	}
	return ms, nil
}
