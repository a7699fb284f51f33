package db

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tripvista/internal/model"
)

// NewSQLite returns a connected GORM DB instance backed by the given file,
// creating the parent directory when needed.
func NewSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	return gormDB, nil
}

// Migrate runs schema migrations for all models.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.User{},
		&model.Package{},
		&model.Service{},
		&model.Testimonial{},
		&model.TeamMember{},
	)
}
