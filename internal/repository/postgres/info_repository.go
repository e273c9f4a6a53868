package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/domain/repository"
	"github.com/travelog-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type entityInfoRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewEntityInfoRepository(db *DB) repository.EntityInfoRepository {
	return &entityInfoRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *entityInfoRepository) GetByEntityID(ctx context.Context, entityID int64) (*domain.EntityInfo, error) {
	query := `
		SELECT id, entity_id, iso3, currency_iso, denom, denoms,
			language_codes, phone, electrical, postal_code, tld,
			population, area, region_id
		FROM travel_entity_info
		WHERE entity_id = $1`

	var info domain.EntityInfo
	var currencyISO sql.NullString
	var population, area, regionID sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, entityID).Scan(
		&info.ID, &info.EntityID, &info.ISO3, &currencyISO, &info.Denom,
		&info.Denoms, &info.LanguageCodes, &info.Phone, &info.Electrical,
		&info.PostalCode, &info.TLD, &population, &area, &regionID,
	)
	if err == sql.ErrNoRows {
		// Enrichment is optional; absence is not an error.
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get entity info", zap.Int64("entity_id", entityID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if currencyISO.Valid {
		info.CurrencyISO = &currencyISO.String
	}
	info.Population = nullID(population)
	info.Area = nullID(area)
	info.RegionID = nullID(regionID)

	if err := r.loadCurrency(ctx, &info); err != nil {
		return nil, err
	}
	if err := r.loadRegion(ctx, &info); err != nil {
		return nil, err
	}
	if err := r.loadLanguages(ctx, &info); err != nil {
		return nil, err
	}
	if err := r.loadNeighbors(ctx, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

func (r *entityInfoRepository) loadCurrency(ctx context.Context, info *domain.EntityInfo) error {
	if info.CurrencyISO == nil {
		return nil
	}

	query := `
		SELECT iso, name, fraction, fraction_name, sign, alt_sign
		FROM travel_currency
		WHERE iso = $1`

	var c domain.Currency
	err := r.db.QueryRowContext(ctx, query, *info.CurrencyISO).Scan(
		&c.ISO, &c.Name, &c.Fraction, &c.FractionName, &c.Sign, &c.AltSign,
	)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		r.logger.Error("Failed to load currency", zap.String("iso", *info.CurrencyISO), zap.Error(err))
		return errors.ErrDatabaseError
	}

	info.Currency = &c
	return nil
}

func (r *entityInfoRepository) loadRegion(ctx context.Context, info *domain.EntityInfo) error {
	if info.RegionID == nil {
		return nil
	}

	query := `SELECT id, name, un_code, parent_id FROM travel_region WHERE id = $1`

	var reg domain.Region
	var parentID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, *info.RegionID).Scan(
		&reg.ID, &reg.Name, &reg.UNCode, &parentID,
	)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		r.logger.Error("Failed to load region", zap.Int64("region_id", *info.RegionID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	reg.ParentID = nullID(parentID)
	info.Region = &reg
	return nil
}

func (r *entityInfoRepository) loadLanguages(ctx context.Context, info *domain.EntityInfo) error {
	query := `
		SELECT l.id, l.iso639_1, l.iso639_2, l.iso639_3, l.name
		FROM travel_language l
		JOIN travel_entity_info_languages il ON il.language_id = l.id
		WHERE il.info_id = $1
		ORDER BY l.name`

	rows, err := r.db.QueryContext(ctx, query, info.ID)
	if err != nil {
		r.logger.Error("Failed to load languages", zap.Int64("info_id", info.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.ISO6391, &l.ISO6392, &l.ISO6393, &l.Name); err != nil {
			return errors.ErrDatabaseError
		}
		info.Languages = append(info.Languages, &l)
	}
	return rows.Err()
}

func (r *entityInfoRepository) loadNeighbors(ctx context.Context, info *domain.EntityInfo) error {
	query := `SELECT` + entityColumns + `
		FROM travel_entity e
		JOIN travel_entity_info_neighbors n ON n.neighbor_id = e.id
		WHERE n.info_id = $1
		ORDER BY e.name`

	rows, err := r.db.QueryContext(ctx, query, info.ID)
	if err != nil {
		r.logger.Error("Failed to load neighbors", zap.Int64("info_id", info.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return errors.ErrDatabaseError
		}
		info.Neighbors = append(info.Neighbors, e)
	}
	return rows.Err()
}
