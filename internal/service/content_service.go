package service

import (
	"context"

	"tripvista/internal/model"
	"tripvista/internal/repository"
)

// ContentService is the admin CRUD surface over the four content tables.
// Handlers bind and validate requests; this layer owns the persistence flow.
// On update, an empty image value keeps the stored filename so re-submitting
// a form without a new file never clears the image.
type ContentService interface {
	ListPackages(ctx context.Context) ([]model.Package, error)
	GetPackage(ctx context.Context, id uint) (*model.Package, error)
	CreatePackage(ctx context.Context, pkg *model.Package) error
	UpdatePackage(ctx context.Context, id uint, fields *model.Package) (*model.Package, error)
	DeletePackage(ctx context.Context, id uint) error

	ListServices(ctx context.Context) ([]model.Service, error)
	GetService(ctx context.Context, id uint) (*model.Service, error)
	CreateService(ctx context.Context, svc *model.Service) error
	UpdateService(ctx context.Context, id uint, fields *model.Service) (*model.Service, error)
	DeleteService(ctx context.Context, id uint) error

	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	GetTestimonial(ctx context.Context, id uint) (*model.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *model.Testimonial) error
	UpdateTestimonial(ctx context.Context, id uint, fields *model.Testimonial) (*model.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uint) error

	ListTeamMembers(ctx context.Context) ([]model.TeamMember, error)
	GetTeamMember(ctx context.Context, id uint) (*model.TeamMember, error)
	CreateTeamMember(ctx context.Context, m *model.TeamMember) error
	UpdateTeamMember(ctx context.Context, id uint, fields *model.TeamMember) (*model.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uint) error
}

type contentService struct {
	packages     repository.PackageRepository
	services     repository.ServiceRepository
	testimonials repository.TestimonialRepository
	team         repository.TeamMemberRepository
}

// NewContentService creates a new content service.
func NewContentService(
	packages repository.PackageRepository,
	services repository.ServiceRepository,
	testimonials repository.TestimonialRepository,
	team repository.TeamMemberRepository,
) ContentService {
	return &contentService{
		packages:     packages,
		services:     services,
		testimonials: testimonials,
		team:         team,
	}
}

// Packages

func (s *contentService) ListPackages(ctx context.Context) ([]model.Package, error) {
	return s.packages.List(ctx)
}

func (s *contentService) GetPackage(ctx context.Context, id uint) (*model.Package, error) {
	return s.packages.FindByID(ctx, id)
}

func (s *contentService) CreatePackage(ctx context.Context, pkg *model.Package) error {
	return s.packages.Create(ctx, pkg)
}

func (s *contentService) UpdatePackage(ctx context.Context, id uint, fields *model.Package) (*model.Package, error) {
	existing, err := s.packages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = fields.Name
	existing.Description = fields.Description
	existing.Type = fields.Type
	existing.Price = fields.Price
	existing.ContactName = fields.ContactName
	existing.ContactPhone = fields.ContactPhone
	existing.DurationDays = fields.DurationDays
	existing.DurationNights = fields.DurationNights
	if fields.Image != "" {
		existing.Image = fields.Image
	}
	if err := s.packages.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *contentService) DeletePackage(ctx context.Context, id uint) error {
	return s.packages.Delete(ctx, id)
}

// Services

func (s *contentService) ListServices(ctx context.Context) ([]model.Service, error) {
	return s.services.List(ctx)
}

func (s *contentService) GetService(ctx context.Context, id uint) (*model.Service, error) {
	return s.services.FindByID(ctx, id)
}

func (s *contentService) CreateService(ctx context.Context, svc *model.Service) error {
	return s.services.Create(ctx, svc)
}

func (s *contentService) UpdateService(ctx context.Context, id uint, fields *model.Service) (*model.Service, error) {
	existing, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = fields.Name
	existing.Description = fields.Description
	existing.ContactPerson = fields.ContactPerson
	existing.Email = fields.Email
	existing.Phone = fields.Phone
	if fields.Image != "" {
		existing.Image = fields.Image
	}
	if err := s.services.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *contentService) DeleteService(ctx context.Context, id uint) error {
	return s.services.Delete(ctx, id)
}

// Testimonials

func (s *contentService) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return s.testimonials.List(ctx)
}

func (s *contentService) GetTestimonial(ctx context.Context, id uint) (*model.Testimonial, error) {
	return s.testimonials.FindByID(ctx, id)
}

func (s *contentService) CreateTestimonial(ctx context.Context, t *model.Testimonial) error {
	return s.testimonials.Create(ctx, t)
}

func (s *contentService) UpdateTestimonial(ctx context.Context, id uint, fields *model.Testimonial) (*model.Testimonial, error) {
	existing, err := s.testimonials.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.TestimonialText = fields.TestimonialText
	existing.Name = fields.Name
	existing.Location = fields.Location
	existing.Rating = fields.Rating
	if fields.Image != "" {
		existing.Image = fields.Image
	}
	if err := s.testimonials.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *contentService) DeleteTestimonial(ctx context.Context, id uint) error {
	return s.testimonials.Delete(ctx, id)
}

// Team members

func (s *contentService) ListTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	return s.team.List(ctx)
}

func (s *contentService) GetTeamMember(ctx context.Context, id uint) (*model.TeamMember, error) {
	return s.team.FindByID(ctx, id)
}

func (s *contentService) CreateTeamMember(ctx context.Context, m *model.TeamMember) error {
	return s.team.Create(ctx, m)
}

func (s *contentService) UpdateTeamMember(ctx context.Context, id uint, fields *model.TeamMember) (*model.TeamMember, error) {
	existing, err := s.team.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = fields.Name
	existing.Position = fields.Position
	existing.IsHead = fields.IsHead
	existing.Email = fields.Email
	existing.Phone = fields.Phone
	if fields.Image != "" {
		existing.Image = fields.Image
	}
	if err := s.team.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *contentService) DeleteTeamMember(ctx context.Context, id uint) error {
	return s.team.Delete(ctx, id)
}
