package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "tripvista/internal/errors"
	"tripvista/internal/logger"
	"tripvista/internal/model"
	"tripvista/internal/repository"
)

// AuthService is the login gate for the admin area.
type AuthService interface {
	// Login validates credentials against the configured admin pair and
	// returns the backing account row, creating it on first success.
	Login(ctx context.Context, username, password string) (*model.User, error)
	// EnsureAdmin provisions the admin account at startup when absent.
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	users         repository.UserRepository
	adminUsername string
	adminPassword string
	log           logger.Logger
}

// NewAuthService creates a new authentication service. The username/password
// pair from configuration is the sole credential authority; stored password
// hashes are never consulted during login.
func NewAuthService(users repository.UserRepository, adminUsername, adminPassword string, log logger.Logger) AuthService {
	return &authService{
		users:         users,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		log:           log,
	}
}

// Login implements the gate. Any mismatch yields ErrAuthFailure without
// revealing which credential was wrong.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	if username != s.adminUsername || password != s.adminPassword {
		s.log.Warn("rejected login attempt", "username", username)
		return nil, apperrors.ErrAuthFailure
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.log.Error("account lookup failed during login", "error", err)
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	// First login with these credentials: persist a shadow account row.
	user = &model.User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("account creation failed during login", "error", err)
		return nil, fmt.Errorf("create account: %w", err)
	}
	s.log.Info("provisioned admin account on first login", "username", username)
	return user, nil
}

// EnsureAdmin mirrors the login-time provisioning at process startup so the
// account exists before the first login.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	count, err := s.users.CountByUsername(ctx, s.adminUsername)
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	user := &model.User{Username: s.adminUsername}
	if err := user.SetPassword(s.adminPassword); err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent boot; the account exists either way.
		if errors.Is(err, apperrors.ErrConstraintViolation) {
			return nil
		}
		return fmt.Errorf("create admin account: %w", err)
	}
	s.log.Info("seeded admin account", "username", s.adminUsername)
	return nil
}
