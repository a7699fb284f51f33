package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"tripvista/internal/logger"
	"tripvista/internal/metrics"
	"tripvista/internal/model"
	"tripvista/internal/service"
	"tripvista/internal/session"
)

// Shared across the package's tests: prometheus collectors register on the
// default registry, so they are created exactly once.
var testMetrics = metrics.New("tripvista_test")

var testLog = logger.NewNop()

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// memSessionStore is a map-backed session.StoreInterface.
type memSessionStore struct {
	sessions map[string]session.Principal
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]session.Principal{}}
}

func (s *memSessionStore) Create(_ context.Context, userID uint, username string) (string, error) {
	token := uuid.NewString()
	s.sessions[token] = session.Principal{UserID: userID, Username: username}
	return token, nil
}

func (s *memSessionStore) Get(_ context.Context, token string) (*session.Principal, error) {
	p, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *memSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

var _ service.CatalogService = (*MockCatalogService)(nil)

func (m *MockCatalogService) Home(ctx context.Context) (*service.HomeData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HomeData), args.Error(1)
}

func (m *MockCatalogService) PackagesByType(ctx context.Context) (*service.PackagesData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PackagesData), args.Error(1)
}

func (m *MockCatalogService) Services(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

func (m *MockCatalogService) Team(ctx context.Context) (*service.TeamData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TeamData), args.Error(1)
}

func (m *MockCatalogService) Testimonials(ctx context.Context) ([]model.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

// MockContentService is a mock implementation of service.ContentService.
type MockContentService struct {
	mock.Mock
}

var _ service.ContentService = (*MockContentService)(nil)

func (m *MockContentService) ListPackages(ctx context.Context) ([]model.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func (m *MockContentService) GetPackage(ctx context.Context, id uint) (*model.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Package), args.Error(1)
}

func (m *MockContentService) CreatePackage(ctx context.Context, pkg *model.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockContentService) UpdatePackage(ctx context.Context, id uint, fields *model.Package) (*model.Package, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Package), args.Error(1)
}

func (m *MockContentService) DeletePackage(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentService) ListServices(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

func (m *MockContentService) GetService(ctx context.Context, id uint) (*model.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockContentService) CreateService(ctx context.Context, svc *model.Service) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockContentService) UpdateService(ctx context.Context, id uint, fields *model.Service) (*model.Service, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockContentService) DeleteService(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentService) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

func (m *MockContentService) GetTestimonial(ctx context.Context, id uint) (*model.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockContentService) CreateTestimonial(ctx context.Context, t *model.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockContentService) UpdateTestimonial(ctx context.Context, id uint, fields *model.Testimonial) (*model.Testimonial, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockContentService) DeleteTestimonial(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentService) ListTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockContentService) GetTeamMember(ctx context.Context, id uint) (*model.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockContentService) CreateTeamMember(ctx context.Context, member *model.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockContentService) UpdateTeamMember(ctx context.Context, id uint, fields *model.TeamMember) (*model.TeamMember, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockContentService) DeleteTeamMember(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
