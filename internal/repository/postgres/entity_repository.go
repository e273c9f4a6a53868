package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/domain/repository"
	"github.com/travelog-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// DefaultSearchLimit bounds result sets when the caller does not cap them.
const DefaultSearchLimit = 50

const entityColumns = `
	e.id, e.type_id, e.code, e.alt_code, e.name, e.full_name, e.locality,
	e.lat, e.lon, e.classification_id, e.flag_id, e.capital_id, e.state_id,
	e.country_id, e.continent_id, e.tz, e.description, e.updated`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntity(s rowScanner) (*domain.Entity, error) {
	var e domain.Entity
	var classificationID, flagID, capitalID, stateID, countryID, continentID sql.NullInt64

	err := s.Scan(
		&e.ID, &e.TypeID, &e.Code, &e.AltCode, &e.Name, &e.FullName, &e.Locality,
		&e.Lat, &e.Lon, &classificationID, &flagID, &capitalID, &stateID,
		&countryID, &continentID, &e.TZ, &e.Description, &e.Updated,
	)
	if err != nil {
		return nil, err
	}

	e.ClassificationID = nullID(classificationID)
	e.FlagID = nullID(flagID)
	e.CapitalID = nullID(capitalID)
	e.StateID = nullID(stateID)
	e.CountryID = nullID(countryID)
	e.ContinentID = nullID(continentID)

	return &e, nil
}

func nullID(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

type entityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewEntityRepository(db *DB) repository.EntityRepository {
	return &entityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *entityRepository) GetByID(ctx context.Context, id int64) (*domain.Entity, error) {
	query := `SELECT` + entityColumns + `
		FROM travel_entity e
		WHERE e.id = $1`

	entity, err := scanEntity(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrEntityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get entity by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	// The type must be known before its eager-load set can be picked.
	if err := r.LoadRelated(ctx, []*domain.Entity{entity}, []string{domain.RelType}); err != nil {
		return nil, err
	}
	if err := r.LoadRelated(ctx, []*domain.Entity{entity}, domain.RelatedFor(entity.TypeAbbr())); err != nil {
		return nil, err
	}

	return entity, nil
}

func (r *entityRepository) Find(ctx context.Context, abbr, code, aux string) ([]*domain.Entity, error) {
	var (
		query string
		args  []interface{}
	)

	if aux != "" {
		// Aux narrows the lookup to one country: the local code only has
		// to be unique within it.
		query = `SELECT` + entityColumns + `
			FROM travel_entity e
			JOIN travel_entity_type t ON e.type_id = t.id
			JOIN travel_entity c ON e.country_id = c.id
			WHERE t.abbr = $1 AND LOWER(c.code) = LOWER($2) AND LOWER(e.code) = LOWER($3)
			ORDER BY e.name`
		args = []interface{}{abbr, aux, code}
	} else {
		query = `SELECT` + entityColumns + `
			FROM travel_entity e
			JOIN travel_entity_type t ON e.type_id = t.id
			WHERE t.abbr = $1 AND LOWER(e.code) = LOWER($2)
			ORDER BY e.name`
		args = []interface{}{abbr, code}
	}

	entities, err := r.queryEntities(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to find entities",
			zap.String("type", abbr),
			zap.String("code", code),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	related := domain.BaseRelated
	if aux == "" {
		// A bare code may resolve to a country or continent, which need
		// their own relations for display.
		related = domain.FindRelated
	}
	if err := r.LoadRelated(ctx, entities, related); err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *entityRepository) Search(ctx context.Context, term, abbr string, limit int) ([]*domain.Entity, error) {
	return r.AdvancedSearch(ctx, []string{term}, abbr, limit)
}

func (r *entityRepository) AdvancedSearch(ctx context.Context, terms []string, abbr string, limit int) ([]*domain.Entity, error) {
	var (
		predicates []string
		args       []interface{}
	)
	argIdx := 1

	for _, term := range terms {
		if term == "" {
			continue
		}
		// The substring predicates take the escaped term so LIKE
		// metacharacters in user input match literally; code equality takes
		// the raw term.
		predicates = append(predicates, fmt.Sprintf(
			`(e.name ILIKE '%%' || $%d || '%%' ESCAPE '\'
				OR e.full_name ILIKE '%%' || $%d || '%%' ESCAPE '\'
				OR e.locality ILIKE '%%' || $%d || '%%' ESCAPE '\'
				OR LOWER(e.code) = LOWER($%d))`,
			argIdx, argIdx, argIdx, argIdx+1,
		))
		args = append(args, escapeLike(term), term)
		argIdx += 2
	}

	if len(predicates) == 0 {
		return []*domain.Entity{}, nil
	}

	query := `SELECT` + entityColumns + `
		FROM travel_entity e
		JOIN travel_entity_type t ON e.type_id = t.id
		WHERE (` + joinPredicates(predicates) + `)`

	if abbr != "" {
		query += fmt.Sprintf(" AND t.abbr = $%d", argIdx)
		args = append(args, abbr)
		argIdx++
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	query += fmt.Sprintf(" ORDER BY e.name LIMIT $%d", argIdx)
	args = append(args, limit)

	entities, err := r.queryEntities(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to search entities",
			zap.Strings("terms", terms),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	if err := r.LoadRelated(ctx, entities, domain.SearchRelated); err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *entityRepository) ByIDs(ctx context.Context, ids []int64) ([]*domain.Entity, error) {
	if len(ids) == 0 {
		return []*domain.Entity{}, nil
	}

	query := `SELECT` + entityColumns + `
		FROM travel_entity e
		WHERE e.id = ANY($1)`

	entities, err := r.queryEntities(ctx, query, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to load entities by ids", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return entities, nil
}

func (r *entityRepository) ByType(ctx context.Context, abbr string) ([]*domain.Entity, error) {
	query := `SELECT` + entityColumns + `
		FROM travel_entity e
		JOIN travel_entity_type t ON e.type_id = t.id
		WHERE t.abbr = $1
		ORDER BY e.name`

	entities, err := r.queryEntities(ctx, query, abbr)
	if err != nil {
		r.logger.Error("Failed to list entities by type", zap.String("type", abbr), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.LoadRelated(ctx, entities, domain.RelatedFor(abbr)); err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *entityRepository) Countries(ctx context.Context) ([]*domain.Entity, error) {
	return r.ByType(ctx, domain.TypeCountry)
}

func (r *entityRepository) Country(ctx context.Context, code string) (*domain.Entity, error) {
	query := `SELECT` + entityColumns + `
		FROM travel_entity e
		JOIN travel_entity_type t ON e.type_id = t.id
		WHERE t.abbr = $1 AND LOWER(e.code) = LOWER($2)`

	entity, err := scanEntity(r.db.QueryRowContext(ctx, query, domain.TypeCountry, code))
	if err == sql.ErrNoRows {
		return nil, errors.ErrEntityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get country", zap.String("code", code), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.LoadRelated(ctx, []*domain.Entity{entity}, domain.RelatedFor(domain.TypeCountry)); err != nil {
		return nil, err
	}

	return entity, nil
}

func (r *entityRepository) RelatedTypes(ctx context.Context, e *domain.Entity) ([]domain.RelatedTypeCount, error) {
	var (
		query string
		args  []interface{}
	)

	switch abbr := e.TypeAbbr(); abbr {
	case domain.TypeContinent:
		// Countries point straight at the continent; everything below
		// them only reaches it through its country. DISTINCT keeps rows
		// matching both arms counted once.
		query = `
			SELECT t.abbr, COUNT(DISTINCT e.id) AS count
			FROM travel_entity e
			JOIN travel_entity_type t ON e.type_id = t.id
			LEFT JOIN travel_entity c ON e.country_id = c.id
			WHERE e.continent_id = $1 OR c.continent_id = $1
			GROUP BY t.abbr
			ORDER BY t.abbr`
		args = []interface{}{e.ID}
	default:
		key, ok := domain.ReverseKey(abbr)
		if !ok {
			return []domain.RelatedTypeCount{}, nil
		}
		column := "e.country_id"
		if key == domain.RelState {
			column = "e.state_id"
		}
		query = `
			SELECT t.abbr, COUNT(*) AS count
			FROM travel_entity e
			JOIN travel_entity_type t ON e.type_id = t.id
			WHERE ` + column + ` = $1
			GROUP BY t.abbr
			ORDER BY t.abbr`
		args = []interface{}{e.ID}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to count related types", zap.Int64("entity_id", e.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	counts := []domain.RelatedTypeCount{}
	for rows.Next() {
		var c domain.RelatedTypeCount
		if err := rows.Scan(&c.Abbr, &c.Count); err != nil {
			r.logger.Error("Failed to scan related type count", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}

	return counts, nil
}

func (r *entityRepository) RelatedByType(ctx context.Context, e *domain.Entity, target *domain.EntityType) ([]*domain.Entity, error) {
	field, ok := domain.RelationField(e.TypeAbbr(), target.Abbr)
	if !ok {
		return []*domain.Entity{}, nil
	}

	var query string
	switch field {
	case domain.RelCountry:
		query = `SELECT` + entityColumns + `
			FROM travel_entity e
			WHERE e.country_id = $1 AND e.type_id = $2
			ORDER BY e.name`
	case domain.RelState:
		query = `SELECT` + entityColumns + `
			FROM travel_entity e
			WHERE e.state_id = $1 AND e.type_id = $2
			ORDER BY e.name`
	case domain.RelContinent:
		query = `SELECT` + entityColumns + `
			FROM travel_entity e
			WHERE e.continent_id = $1 AND e.type_id = $2
			ORDER BY e.name`
	default:
		// The remaining rule walks through the country to its continent.
		query = `SELECT` + entityColumns + `
			FROM travel_entity e
			JOIN travel_entity c ON e.country_id = c.id
			WHERE c.continent_id = $1 AND e.type_id = $2
			ORDER BY e.name`
	}

	entities, err := r.queryEntities(ctx, query, e.ID, target.ID)
	if err != nil {
		r.logger.Error("Failed to list related entities",
			zap.Int64("entity_id", e.ID),
			zap.String("target_type", target.Abbr),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	if err := r.LoadRelated(ctx, entities, domain.RelatedFor(target.Abbr)); err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *entityRepository) SetFlag(ctx context.Context, entityID, flagID int64) error {
	query := `UPDATE travel_entity SET flag_id = $2, updated = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, entityID, flagID)
	if err != nil {
		r.logger.Error("Failed to set entity flag",
			zap.Int64("entity_id", entityID),
			zap.Int64("flag_id", flagID),
			zap.Error(err),
		)
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrEntityNotFound
	}

	return nil
}

func (r *entityRepository) queryEntities(ctx context.Context, query string, args ...interface{}) ([]*domain.Entity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := []*domain.Entity{}
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so a search term matches as a
// literal substring.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func joinPredicates(predicates []string) string {
	out := predicates[0]
	for _, p := range predicates[1:] {
		out += " OR " + p
	}
	return out
}
