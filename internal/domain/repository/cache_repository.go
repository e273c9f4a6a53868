package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-level cache with search-result helpers.
type CacheRepository interface {
	// Get returns nil without error on a cache miss.
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	// GetSearch reads a cached search response by its composed key.
	GetSearch(ctx context.Context, key string) ([]byte, error)

	// SetSearch stores a search response under its composed key.
	SetSearch(ctx context.Context, key string, data []byte, ttl time.Duration) error
}
