package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "tripvista/internal/errors"
)

// translate converts gorm errors into the application error taxonomy.
// Anything that is not a not-found or duplicate condition is treated as the
// storage layer being unavailable.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrConstraintViolation
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
}
