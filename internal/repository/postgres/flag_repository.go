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

type flagRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFlagRepository(db *DB) repository.FlagRepository {
	return &flagRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *flagRepository) GetByID(ctx context.Context, id int64) (*domain.Flag, error) {
	query := `SELECT id, source, svg, is_locked, emoji FROM travel_flag WHERE id = $1`

	var f domain.Flag
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.Source, &f.SVG, &f.IsLocked, &f.Emoji,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrFlagNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get flag", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &f, nil
}

func (r *flagRepository) Create(ctx context.Context, flag *domain.Flag) error {
	query := `
		INSERT INTO travel_flag (source, svg, is_locked, emoji)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		flag.Source, flag.SVG, flag.IsLocked, flag.Emoji,
	).Scan(&flag.ID)
	if err != nil {
		r.logger.Error("Failed to create flag", zap.String("source", flag.Source), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *flagRepository) UpdateSource(ctx context.Context, id int64, source string) error {
	query := `UPDATE travel_flag SET source = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, source)
	if err != nil {
		r.logger.Error("Failed to update flag source", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrFlagNotFound
	}

	return nil
}
