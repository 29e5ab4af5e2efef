package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE classes that mean the row itself was rejected. Class 23 covers
// unique, foreign-key, not-null and check violations; class 22 covers data
// exceptions such as numeric overflow.
const (
	integrityConstraintClass = "23"
	dataExceptionClass       = "22"
)

// classify wraps a driver or gorm error into one of the package sentinels.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return fmt.Errorf("%s: %w: %w", op, ErrConstraintViolation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case integrityConstraintClass, dataExceptionClass:
			return fmt.Errorf("%s: %w: %w", op, ErrConstraintViolation, err)
		}
	}

	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
