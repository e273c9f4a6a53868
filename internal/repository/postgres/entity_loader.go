package postgres

import (
	"context"
	"strings"

	"github.com/lib/pq"
	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// LoadRelated stitches related rows onto already-fetched entities. Relation
// paths are grouped by their head segment and each group is satisfied with a
// single batched query; dotted tails recurse on the freshly loaded children.
// Already-populated pointers are left alone, so repeated application is safe.
func (r *entityRepository) LoadRelated(ctx context.Context, entities []*domain.Entity, relations []string) error {
	if len(entities) == 0 || len(relations) == 0 {
		return nil
	}

	tails := make(map[string][]string)
	for _, rel := range relations {
		head, tail, found := strings.Cut(rel, ".")
		if found {
			tails[head] = append(tails[head], tail)
		} else if _, ok := tails[head]; !ok {
			tails[head] = nil
		}
	}

	for head, rest := range tails {
		switch head {
		case domain.RelType:
			if err := r.loadTypes(ctx, entities); err != nil {
				return err
			}
		case domain.RelFlag:
			if err := r.loadFlags(ctx, entities); err != nil {
				return err
			}
		case domain.RelClassification:
			if err := r.loadClassifications(ctx, entities); err != nil {
				return err
			}
		case domain.RelCapital, domain.RelState, domain.RelCountry, domain.RelContinent:
			children, err := r.loadEntityRefs(ctx, entities, head)
			if err != nil {
				return err
			}
			if len(rest) > 0 && len(children) > 0 {
				if err := r.LoadRelated(ctx, children, rest); err != nil {
					return err
				}
			}
		default:
			r.logger.Warn("Unknown relation path", zap.String("relation", head))
		}
	}

	return nil
}

func (r *entityRepository) loadTypes(ctx context.Context, entities []*domain.Entity) error {
	idSet := make(map[int64]bool)
	for _, e := range entities {
		if e.Type == nil {
			idSet[e.TypeID] = true
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	query := `SELECT id, abbr, title FROM travel_entity_type WHERE id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(idSetKeys(idSet)))
	if err != nil {
		r.logger.Error("Failed to load entity types", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	byID := make(map[int64]*domain.EntityType)
	for rows.Next() {
		var t domain.EntityType
		if err := rows.Scan(&t.ID, &t.Abbr, &t.Title); err != nil {
			return errors.ErrDatabaseError
		}
		byID[t.ID] = &t
	}
	if err := rows.Err(); err != nil {
		return errors.ErrDatabaseError
	}

	for _, e := range entities {
		if e.Type == nil {
			e.Type = byID[e.TypeID]
		}
	}
	return nil
}

func (r *entityRepository) loadFlags(ctx context.Context, entities []*domain.Entity) error {
	idSet := make(map[int64]bool)
	for _, e := range entities {
		if e.Flag == nil && e.FlagID != nil {
			idSet[*e.FlagID] = true
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	query := `SELECT id, source, svg, is_locked, emoji FROM travel_flag WHERE id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(idSetKeys(idSet)))
	if err != nil {
		r.logger.Error("Failed to load flags", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	byID := make(map[int64]*domain.Flag)
	for rows.Next() {
		var f domain.Flag
		if err := rows.Scan(&f.ID, &f.Source, &f.SVG, &f.IsLocked, &f.Emoji); err != nil {
			return errors.ErrDatabaseError
		}
		byID[f.ID] = &f
	}
	if err := rows.Err(); err != nil {
		return errors.ErrDatabaseError
	}

	for _, e := range entities {
		if e.Flag == nil && e.FlagID != nil {
			e.Flag = byID[*e.FlagID]
		}
	}
	return nil
}

func (r *entityRepository) loadClassifications(ctx context.Context, entities []*domain.Entity) error {
	idSet := make(map[int64]bool)
	for _, e := range entities {
		if e.Classification == nil && e.ClassificationID != nil {
			idSet[*e.ClassificationID] = true
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	query := `SELECT id, type_id, title FROM travel_classification WHERE id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(idSetKeys(idSet)))
	if err != nil {
		r.logger.Error("Failed to load classifications", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	byID := make(map[int64]*domain.Classification)
	for rows.Next() {
		var c domain.Classification
		if err := rows.Scan(&c.ID, &c.TypeID, &c.Title); err != nil {
			return errors.ErrDatabaseError
		}
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return errors.ErrDatabaseError
	}

	for _, e := range entities {
		if e.Classification == nil && e.ClassificationID != nil {
			e.Classification = byID[*e.ClassificationID]
		}
	}
	return nil
}

// loadEntityRefs batch-loads one self-reference and returns the distinct
// children so dotted tails can recurse on them.
func (r *entityRepository) loadEntityRefs(ctx context.Context, entities []*domain.Entity, head string) ([]*domain.Entity, error) {
	var (
		refID  func(*domain.Entity) *int64
		ref    func(*domain.Entity) *domain.Entity
		assign func(*domain.Entity, *domain.Entity)
	)
	switch head {
	case domain.RelCapital:
		refID = func(e *domain.Entity) *int64 { return e.CapitalID }
		ref = func(e *domain.Entity) *domain.Entity { return e.Capital }
		assign = func(e, c *domain.Entity) { e.Capital = c }
	case domain.RelState:
		refID = func(e *domain.Entity) *int64 { return e.StateID }
		ref = func(e *domain.Entity) *domain.Entity { return e.State }
		assign = func(e, c *domain.Entity) { e.State = c }
	case domain.RelCountry:
		refID = func(e *domain.Entity) *int64 { return e.CountryID }
		ref = func(e *domain.Entity) *domain.Entity { return e.Country }
		assign = func(e, c *domain.Entity) { e.Country = c }
	case domain.RelContinent:
		refID = func(e *domain.Entity) *int64 { return e.ContinentID }
		ref = func(e *domain.Entity) *domain.Entity { return e.Continent }
		assign = func(e, c *domain.Entity) { e.Continent = c }
	}

	idSet := make(map[int64]bool)
	loaded := make(map[int64]*domain.Entity)
	for _, e := range entities {
		id := refID(e)
		if id == nil {
			continue
		}
		if child := ref(e); child != nil {
			// Keep an already-loaded child reachable for tail recursion.
			loaded[child.ID] = child
			continue
		}
		idSet[*id] = true
	}
	for id := range loaded {
		delete(idSet, id)
	}
	if len(idSet) > 0 {
		query := `SELECT` + entityColumns + `
			FROM travel_entity e
			WHERE e.id = ANY($1)`
		rows, err := r.db.QueryContext(ctx, query, pq.Array(idSetKeys(idSet)))
		if err != nil {
			r.logger.Error("Failed to load related entities",
				zap.String("relation", head),
				zap.Error(err),
			)
			return nil, errors.ErrDatabaseError
		}
		defer rows.Close()

		for rows.Next() {
			child, err := scanEntity(rows)
			if err != nil {
				return nil, errors.ErrDatabaseError
			}
			loaded[child.ID] = child
		}
		if err := rows.Err(); err != nil {
			return nil, errors.ErrDatabaseError
		}
	}

	for _, e := range entities {
		id := refID(e)
		if id == nil || ref(e) != nil {
			continue
		}
		assign(e, loaded[*id])
	}

	children := make([]*domain.Entity, 0, len(loaded))
	for _, child := range loaded {
		children = append(children, child)
	}
	return children, nil
}

func idSetKeys(set map[int64]bool) []int64 {
	keys := make([]int64, 0, len(set))
	for id := range set {
		keys = append(keys, id)
	}
	return keys
}
