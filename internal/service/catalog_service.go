package service

import (
	"context"

	"tripvista/internal/model"
	"tripvista/internal/repository"
)

// HomeData is the payload of the public landing page.
type HomeData struct {
	Packages []model.Package `json:"packages"`
	Services []model.Service `json:"services"`
}

// PackagesData partitions packages by type. The two groups come from two
// filter queries, so a row can never appear in both.
type PackagesData struct {
	National      []model.Package `json:"national_packages"`
	International []model.Package `json:"international_packages"`
}

// TeamData partitions staff into leadership and members.
type TeamData struct {
	Heads   []model.TeamMember `json:"heads"`
	Members []model.TeamMember `json:"members"`
}

// CatalogService serves the unauthenticated read surface.
type CatalogService interface {
	Home(ctx context.Context) (*HomeData, error)
	PackagesByType(ctx context.Context) (*PackagesData, error)
	Services(ctx context.Context) ([]model.Service, error)
	Team(ctx context.Context) (*TeamData, error)
	Testimonials(ctx context.Context) ([]model.Testimonial, error)
}

type catalogService struct {
	packages     repository.PackageRepository
	services     repository.ServiceRepository
	testimonials repository.TestimonialRepository
	team         repository.TeamMemberRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	packages repository.PackageRepository,
	services repository.ServiceRepository,
	testimonials repository.TestimonialRepository,
	team repository.TeamMemberRepository,
) CatalogService {
	return &catalogService{
		packages:     packages,
		services:     services,
		testimonials: testimonials,
		team:         team,
	}
}

func (s *catalogService) Home(ctx context.Context) (*HomeData, error) {
	packages, err := s.packages.List(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	return &HomeData{Packages: packages, Services: services}, nil
}

func (s *catalogService) PackagesByType(ctx context.Context) (*PackagesData, error) {
	national, err := s.packages.ListByType(ctx, model.PackageTypeNational)
	if err != nil {
		return nil, err
	}
	international, err := s.packages.ListByType(ctx, model.PackageTypeInternational)
	if err != nil {
		return nil, err
	}
	return &PackagesData{National: national, International: international}, nil
}

func (s *catalogService) Services(ctx context.Context) ([]model.Service, error) {
	return s.services.List(ctx)
}

func (s *catalogService) Team(ctx context.Context) (*TeamData, error) {
	heads, err := s.team.ListByHead(ctx, true)
	if err != nil {
		return nil, err
	}
	members, err := s.team.ListByHead(ctx, false)
	if err != nil {
		return nil, err
	}
	return &TeamData{Heads: heads, Members: members}, nil
}

func (s *catalogService) Testimonials(ctx context.Context) ([]model.Testimonial, error) {
	return s.testimonials.List(ctx)
}
