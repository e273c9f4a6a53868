package repository

import (
	"context"

	"github.com/travelog-service/internal/domain"
)

// FlagRepository stores flag display assets.
type FlagRepository interface {
	// GetByID returns one flag.
	GetByID(ctx context.Context, id int64) (*domain.Flag, error)

	// Create inserts a flag and returns it with its id set.
	Create(ctx context.Context, flag *domain.Flag) error

	// UpdateSource overwrites the source URL of an existing row. Lock
	// semantics are the caller's concern.
	UpdateSource(ctx context.Context, id int64, source string) error
}
