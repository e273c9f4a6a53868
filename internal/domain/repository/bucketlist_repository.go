package repository

import (
	"context"

	"github.com/travelog-service/internal/domain"
)

// BucketListRepository stores entity collections.
type BucketListRepository interface {
	// GetByID returns one list without entities loaded.
	GetByID(ctx context.Context, id int64) (*domain.BucketList, error)

	// ForUser lists everything visible to the user (public lists plus, for
	// authenticated users, their own), ordered by title.
	ForUser(ctx context.Context, user domain.Identity) ([]*domain.BucketList, error)

	// Create inserts a list and returns it with its id set.
	Create(ctx context.Context, list *domain.BucketList) error

	// Entities returns the member entities with flag, type, state and
	// country loaded.
	Entities(ctx context.Context, listID int64) ([]*domain.Entity, error)

	// AddEntities attaches entities to a list and touches last_update.
	AddEntities(ctx context.Context, listID int64, entityIDs []int64) error

	// RemoveEntity detaches one entity.
	RemoveEntity(ctx context.Context, listID, entityID int64) error
}
