package repository

import (
	"context"

	"github.com/travelog-service/internal/domain"
)

// TravelLogRepository stores per-user visit records.
type TravelLogRepository interface {
	// Create inserts a log entry and returns it with its id set.
	Create(ctx context.Context, log *domain.TravelLog) error

	// GetByID returns one entry.
	GetByID(ctx context.Context, id int64) (*domain.TravelLog, error)

	// UpdateNotes replaces the notes of an entry.
	UpdateNotes(ctx context.Context, id int64, notes string) error

	// UpdateRating replaces the star rating of an entry.
	UpdateRating(ctx context.Context, id int64, rating int) error

	// ListForUser returns a user's entries newest-first by arrival.
	ListForUser(ctx context.Context, userID int64, limit int) ([]*domain.TravelLog, error)

	// Checklist maps entity id to visit count for a user.
	Checklist(ctx context.Context, userID int64) (map[int64]int, error)

	// CountForEntities maps entity id to visit count for a user, limited
	// to the given entities.
	CountForEntities(ctx context.Context, userID int64, entityIDs []int64) (map[int64]int, error)

	// UserHistory returns the distinct entities a user has visited and all
	// their log rows newest-first, for the history export.
	UserHistory(ctx context.Context, userID int64) ([]*domain.Entity, []*domain.TravelLog, error)
}
