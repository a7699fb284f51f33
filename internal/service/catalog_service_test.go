package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "tripvista/internal/errors"
	"tripvista/internal/model"
)

// MockPackageRepository is a mock implementation of PackageRepository.
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) Create(ctx context.Context, pkg *model.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, pkg *model.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPackageRepository) FindByID(ctx context.Context, id uint) (*model.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Package), args.Error(1)
}

func (m *MockPackageRepository) List(ctx context.Context) ([]model.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func (m *MockPackageRepository) ListByType(ctx context.Context, packageType string) ([]model.Package, error) {
	args := m.Called(ctx, packageType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

// MockServiceRepository is a mock implementation of ServiceRepository.
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, svc *model.Service) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id uint) (*model.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

// MockTestimonialRepository is a mock implementation of TestimonialRepository.
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTestimonialRepository) Update(ctx context.Context, t *model.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTestimonialRepository) FindByID(ctx context.Context, id uint) (*model.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) List(ctx context.Context) ([]model.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

// MockTeamMemberRepository is a mock implementation of TeamMemberRepository.
type MockTeamMemberRepository struct {
	mock.Mock
}

func (m *MockTeamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) Update(ctx context.Context, member *model.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) FindByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) List(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) ListByHead(ctx context.Context, isHead bool) ([]model.TeamMember, error) {
	args := m.Called(ctx, isHead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func newCatalogWithMocks() (CatalogService, *MockPackageRepository, *MockServiceRepository, *MockTestimonialRepository, *MockTeamMemberRepository) {
	pkgRepo := new(MockPackageRepository)
	svcRepo := new(MockServiceRepository)
	tRepo := new(MockTestimonialRepository)
	teamRepo := new(MockTeamMemberRepository)
	return NewCatalogService(pkgRepo, svcRepo, tRepo, teamRepo), pkgRepo, svcRepo, tRepo, teamRepo
}

func TestCatalogService_PackagesByType_Partition(t *testing.T) {
	catalog, pkgRepo, _, _, _ := newCatalogWithMocks()

	national := []model.Package{
		{ID: 1, Name: "Goa", Type: model.PackageTypeNational},
		{ID: 3, Name: "Manali", Type: model.PackageTypeNational},
	}
	international := []model.Package{
		{ID: 2, Name: "Bali", Type: model.PackageTypeInternational},
	}
	pkgRepo.On("ListByType", mock.Anything, model.PackageTypeNational).Return(national, nil)
	pkgRepo.On("ListByType", mock.Anything, model.PackageTypeInternational).Return(international, nil)

	data, err := catalog.PackagesByType(context.Background())
	assert.NoError(t, err)
	assert.Len(t, data.National, 2)
	assert.Len(t, data.International, 1)

	// No record appears in both groups.
	seen := map[uint]bool{}
	for _, p := range data.National {
		seen[p.ID] = true
	}
	for _, p := range data.International {
		assert.False(t, seen[p.ID], "package %d in both partitions", p.ID)
	}
	pkgRepo.AssertExpectations(t)
}

func TestCatalogService_Team_Partition(t *testing.T) {
	catalog, _, _, _, teamRepo := newCatalogWithMocks()

	heads := []model.TeamMember{{ID: 1, Name: "Kavita", IsHead: true}}
	members := []model.TeamMember{
		{ID: 2, Name: "Dev"},
		{ID: 3, Name: "Anita"},
	}
	teamRepo.On("ListByHead", mock.Anything, true).Return(heads, nil)
	teamRepo.On("ListByHead", mock.Anything, false).Return(members, nil)

	data, err := catalog.Team(context.Background())
	assert.NoError(t, err)
	assert.Len(t, data.Heads, 1)
	assert.Len(t, data.Members, 2)

	// Groups are disjoint and together cover all three members.
	ids := map[uint]bool{}
	for _, m := range data.Heads {
		ids[m.ID] = true
	}
	for _, m := range data.Members {
		assert.False(t, ids[m.ID], "member %d in both partitions", m.ID)
		ids[m.ID] = true
	}
	assert.Len(t, ids, 3)
	teamRepo.AssertExpectations(t)
}

func TestCatalogService_Home(t *testing.T) {
	catalog, pkgRepo, svcRepo, _, _ := newCatalogWithMocks()

	pkgRepo.On("List", mock.Anything).Return([]model.Package{{ID: 1, Name: "Goa"}}, nil)
	svcRepo.On("List", mock.Anything).Return([]model.Service{{ID: 1, Name: "Visas"}}, nil)

	data, err := catalog.Home(context.Background())
	assert.NoError(t, err)
	assert.Len(t, data.Packages, 1)
	assert.Len(t, data.Services, 1)
}

func TestCatalogService_Home_StorageError(t *testing.T) {
	catalog, pkgRepo, _, _, _ := newCatalogWithMocks()

	pkgRepo.On("List", mock.Anything).Return(nil, apperrors.ErrStorageUnavailable)

	data, err := catalog.Home(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	assert.Nil(t, data)
}
