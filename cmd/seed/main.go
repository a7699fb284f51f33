package main

import (
	"context"
	"errors"
	"log"

	"tripvista/internal/config"
	"tripvista/internal/db"
	apperrors "tripvista/internal/errors"
	"tripvista/internal/model"
	"tripvista/internal/repository"
)

// Sample content for local development. The seed is idempotent: rows are
// matched by name and updated in place.
var samplePackages = []model.Package{
	{
		Name:           "Goa Beach Escape",
		Description:    "Five days of beaches, forts and seafood on the Konkan coast.",
		Type:           model.PackageTypeNational,
		Price:          "24,999 INR",
		ContactName:    "Priya Nair",
		ContactPhone:   "+91 98450 12345",
		DurationDays:   5,
		DurationNights: 4,
	},
	{
		Name:           "Himalayan Trekking Week",
		Description:    "Guided trek through the Kullu valley with homestay nights.",
		Type:           model.PackageTypeNational,
		Price:          "32,500 INR",
		ContactName:    "Arjun Thakur",
		ContactPhone:   "+91 98160 55443",
		DurationDays:   7,
		DurationNights: 6,
	},
	{
		Name:           "Bali Island Getaway",
		Description:    "Temples, rice terraces and surf lessons in Uluwatu.",
		Type:           model.PackageTypeInternational,
		Price:          "89,000 INR",
		ContactName:    "Meera Joshi",
		ContactPhone:   "+91 99300 77881",
		DurationDays:   6,
		DurationNights: 5,
	},
}

var sampleServices = []model.Service{
	{
		Name:          "Visa Assistance",
		Description:   "Document checks and embassy appointment handling.",
		ContactPerson: "Rahul Verma",
		Email:         "visas@example.com",
		Phone:         "+91 22 4000 1100",
	},
	{
		Name:          "Airport Transfers",
		Description:   "Private pickup and drop for all booked packages.",
		ContactPerson: "Sunita Rao",
		Email:         "transfers@example.com",
		Phone:         "+91 22 4000 1101",
	},
}

var sampleTeam = []model.TeamMember{
	{Name: "Kavita Menon", Position: "Founder & CEO", Image: "kavita.jpg", IsHead: true, Email: "kavita@example.com"},
	{Name: "Dev Patel", Position: "Tour Coordinator", Image: "dev.jpg", Email: "dev@example.com"},
	{Name: "Anita Shah", Position: "Customer Support", Image: "anita.jpg", Email: "anita@example.com"},
}

var sampleTestimonials = []model.Testimonial{
	{
		TestimonialText: "The Goa trip was perfectly organized, start to finish.",
		Name:            "Rohit Sharma",
		Location:        "Pune",
		Rating:          5,
		Image:           "rohit.jpg",
	},
	{
		TestimonialText: "Visa help saved us weeks. Bali was a dream.",
		Name:            "Leela Krishnan",
		Location:        "Chennai",
		Rating:          4,
		Image:           "leela.jpg",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database ready")

	ctx := context.Background()
	created, updated := 0, 0

	packageRepo := repository.NewPackageRepository(gormDB)
	existingPkgs, err := packageRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list packages: %v", err)
	}
	pkgByName := map[string]model.Package{}
	for _, p := range existingPkgs {
		pkgByName[p.Name] = p
	}
	for _, p := range samplePackages {
		if existing, ok := pkgByName[p.Name]; ok {
			p.ID = existing.ID
			p.Image = existing.Image
			if err := packageRepo.Update(ctx, &p); err != nil {
				log.Fatalf("Failed to update package %q: %v", p.Name, err)
			}
			updated++
			continue
		}
		if err := packageRepo.Create(ctx, &p); err != nil {
			log.Fatalf("Failed to create package %q: %v", p.Name, err)
		}
		created++
	}

	serviceRepo := repository.NewServiceRepository(gormDB)
	existingSvcs, err := serviceRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list services: %v", err)
	}
	svcByName := map[string]model.Service{}
	for _, s := range existingSvcs {
		svcByName[s.Name] = s
	}
	for _, s := range sampleServices {
		if existing, ok := svcByName[s.Name]; ok {
			s.ID = existing.ID
			s.Image = existing.Image
			if err := serviceRepo.Update(ctx, &s); err != nil {
				log.Fatalf("Failed to update service %q: %v", s.Name, err)
			}
			updated++
			continue
		}
		if err := serviceRepo.Create(ctx, &s); err != nil {
			log.Fatalf("Failed to create service %q: %v", s.Name, err)
		}
		created++
	}

	teamRepo := repository.NewTeamMemberRepository(gormDB)
	existingTeam, err := teamRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list team members: %v", err)
	}
	memberByName := map[string]model.TeamMember{}
	for _, m := range existingTeam {
		memberByName[m.Name] = m
	}
	for _, m := range sampleTeam {
		if existing, ok := memberByName[m.Name]; ok {
			m.ID = existing.ID
			if err := teamRepo.Update(ctx, &m); err != nil {
				log.Fatalf("Failed to update team member %q: %v", m.Name, err)
			}
			updated++
			continue
		}
		if err := teamRepo.Create(ctx, &m); err != nil {
			log.Fatalf("Failed to create team member %q: %v", m.Name, err)
		}
		created++
	}

	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	existingTs, err := testimonialRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list testimonials: %v", err)
	}
	tByName := map[string]model.Testimonial{}
	for _, t := range existingTs {
		tByName[t.Name] = t
	}
	for _, t := range sampleTestimonials {
		if existing, ok := tByName[t.Name]; ok {
			t.ID = existing.ID
			if err := testimonialRepo.Update(ctx, &t); err != nil {
				log.Fatalf("Failed to update testimonial from %q: %v", t.Name, err)
			}
			updated++
			continue
		}
		if err := testimonialRepo.Create(ctx, &t); err != nil {
			log.Fatalf("Failed to create testimonial from %q: %v", t.Name, err)
		}
		created++
	}

	// Admin account, same bootstrap the server performs.
	userRepo := repository.NewUserRepository(gormDB)
	if _, err := userRepo.FindByUsername(ctx, cfg.AdminUsername); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Fatalf("Failed to check admin account: %v", err)
		}
		admin := &model.User{Username: cfg.AdminUsername}
		if err := admin.SetPassword(cfg.AdminPassword); err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin account: %v", err)
		}
		log.Printf("Admin account %q created", cfg.AdminUsername)
	}

	log.Printf("Seed completed: %d created, %d updated", created, updated)
}
