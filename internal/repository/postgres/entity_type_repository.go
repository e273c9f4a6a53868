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

type entityTypeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewEntityTypeRepository(db *DB) repository.EntityTypeRepository {
	return &entityTypeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *entityTypeRepository) GetByAbbr(ctx context.Context, abbr string) (*domain.EntityType, error) {
	query := `SELECT id, abbr, title FROM travel_entity_type WHERE abbr = $1`

	var t domain.EntityType
	err := r.db.QueryRowContext(ctx, query, abbr).Scan(&t.ID, &t.Abbr, &t.Title)
	if err == sql.ErrNoRows {
		return nil, errors.ErrEntityTypeNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get entity type", zap.String("abbr", abbr), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &t, nil
}

func (r *entityTypeRepository) List(ctx context.Context) ([]*domain.EntityType, error) {
	query := `SELECT id, abbr, title FROM travel_entity_type ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list entity types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	types := []*domain.EntityType{}
	for rows.Next() {
		var t domain.EntityType
		if err := rows.Scan(&t.ID, &t.Abbr, &t.Title); err != nil {
			return nil, errors.ErrDatabaseError
		}
		types = append(types, &t)
	}
	return types, rows.Err()
}
