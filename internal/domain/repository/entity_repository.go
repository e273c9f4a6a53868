package repository

import (
	"context"

	"github.com/travelog-service/internal/domain"
)

// EntityRepository is the read/write contract over the geographic entity
// graph.
type EntityRepository interface {
	// GetByID returns an entity with the base related set loaded.
	GetByID(ctx context.Context, id int64) (*domain.Entity, error)

	// Find resolves a (type, code, aux) triple. With aux set the lookup is
	// type + country code + local code; without it, type + code. The
	// returned slice is the full candidate set: zero, one, or many rows.
	Find(ctx context.Context, abbr, code, aux string) ([]*domain.Entity, error)

	// Search matches term case-insensitively against name, full name and
	// locality (substring) or code (exact), optionally restricted to a
	// type. A blank term returns an empty set without querying.
	Search(ctx context.Context, term, abbr string, limit int) ([]*domain.Entity, error)

	// AdvancedSearch OR-combines the per-term search predicate: a row
	// matching any term is returned once.
	AdvancedSearch(ctx context.Context, terms []string, abbr string, limit int) ([]*domain.Entity, error)

	// ByIDs returns the entities with the given ids, unordered and without
	// relations loaded.
	ByIDs(ctx context.Context, ids []int64) ([]*domain.Entity, error)

	// ByType lists entities of one type with that type's eager-load set
	// applied, ordered by name.
	ByType(ctx context.Context, abbr string) ([]*domain.Entity, error)

	// Countries lists all country entities with the base related set.
	Countries(ctx context.Context) ([]*domain.Entity, error)

	// Country returns the single country with the given code.
	Country(ctx context.Context, code string) (*domain.Entity, error)

	// RelatedTypes groups the entities related to e by type, with counts.
	// Continents union the direct and through-country paths without double
	// counting; types without a reverse key yield an empty slice.
	RelatedTypes(ctx context.Context, e *domain.Entity) ([]domain.RelatedTypeCount, error)

	// RelatedByType lists entities of target type related to e, resolved
	// through the two-level relation-field rules, with the target type's
	// eager-load set applied.
	RelatedByType(ctx context.Context, e *domain.Entity, target *domain.EntityType) ([]*domain.Entity, error)

	// LoadRelated applies a related set to already-fetched entities.
	LoadRelated(ctx context.Context, entities []*domain.Entity, relations []string) error

	// SetFlag repoints an entity at a flag row.
	SetFlag(ctx context.Context, entityID, flagID int64) error
}

// EntityTypeRepository looks up the closed set of type tags.
type EntityTypeRepository interface {
	// GetByAbbr resolves a type abbreviation.
	GetByAbbr(ctx context.Context, abbr string) (*domain.EntityType, error)

	// List returns every registered type.
	List(ctx context.Context) ([]*domain.EntityType, error)
}

// EntityInfoRepository loads the one-to-one country enrichment.
type EntityInfoRepository interface {
	// GetByEntityID returns the info row with currency, region, languages
	// and neighbors loaded, or nil when the entity has none.
	GetByEntityID(ctx context.Context, entityID int64) (*domain.EntityInfo, error)
}
