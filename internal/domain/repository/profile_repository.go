package repository

import (
	"context"

	"github.com/travelog-service/internal/domain"
)

// ProfileRepository stores per-user visibility settings.
type ProfileRepository interface {
	// ForUser returns the user's profile, creating the default protected
	// row on first access. Reserved for the caller's own profile.
	ForUser(ctx context.Context, userID int64) (*domain.Profile, error)

	// GetByUserID returns the user's profile without creating one, or
	// ErrProfileNotFound.
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)

	// Public lists all public profiles.
	Public(ctx context.Context) ([]*domain.Profile, error)

	// SetAccess updates the access level.
	SetAccess(ctx context.Context, userID int64, access domain.AccessLevel) error
}
