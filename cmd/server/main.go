package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	_ "tripvista/docs" // swagger docs

	"tripvista/internal/cache"
	"tripvista/internal/config"
	"tripvista/internal/db"
	"tripvista/internal/handler"
	"tripvista/internal/logger"
	"tripvista/internal/metrics"
	"tripvista/internal/repository"
	"tripvista/internal/router"
	"tripvista/internal/service"
	"tripvista/internal/session"
	"tripvista/internal/upload"
)

// @title Travel Agency CMS API
// @version 1.0
// @description Content-managed travel agency site: public catalog pages plus a session-gated admin CRUD area with image uploads.
// @host localhost:8080
// @schemes http
func main() {
	cfg := config.Load()
	log := logger.New()

	gormDB, err := db.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatal("database init failed", "error", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("auto-migrate failed", "error", err)
	}

	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("upload store init failed", "error", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := session.NewStore(cacheClient, time.Duration(cfg.SessionTTL)*time.Hour)
	m := metrics.New("tripvista")

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	packageRepo := repository.NewPackageRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	teamRepo := repository.NewTeamMemberRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.AdminUsername, cfg.AdminPassword, log)
	catalogService := service.NewCatalogService(packageRepo, serviceRepo, testimonialRepo, teamRepo)
	contentService := service.NewContentService(packageRepo, serviceRepo, testimonialRepo, teamRepo)

	// The admin account exists before the first login.
	if err := authService.EnsureAdmin(context.Background()); err != nil {
		log.Fatal("admin bootstrap failed", "error", err)
	}

	// Initialize handlers
	publicHandler := handler.NewPublicHandler(catalogService, m, log)
	authHandler := handler.NewAuthHandler(authService, sessions, m, log)
	adminHandler := handler.NewAdminHandler(contentService, uploads, m, log)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, sessions, publicHandler, authHandler, adminHandler, cfg.UploadDir, log)

	addr := ":" + cfg.ServerPort
	log.Info("server starting", "addr", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal("server start failed", "error", err)
	}
}
