package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches, including rows that exist
	// but belong to another owner.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a unique index rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
)

// translate maps GORM errors onto the package sentinels and wraps the rest.
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicateKey)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
