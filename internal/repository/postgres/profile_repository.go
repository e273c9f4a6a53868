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

type profileRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewProfileRepository(db *DB) repository.ProfileRepository {
	return &profileRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *profileRepository) ForUser(ctx context.Context, userID int64) (*domain.Profile, error) {
	insert := `
		INSERT INTO travel_profile (user_id, access)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, insert, userID, domain.AccessProtected); err != nil {
		r.logger.Error("Failed to ensure profile", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.GetByUserID(ctx, userID)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	query := `SELECT id, user_id, access FROM travel_profile WHERE user_id = $1`

	var p domain.Profile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.Access)
	if err == sql.ErrNoRows {
		return nil, errors.ErrProfileNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get profile", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &p, nil
}

func (r *profileRepository) Public(ctx context.Context) ([]*domain.Profile, error) {
	query := `SELECT id, user_id, access FROM travel_profile WHERE access = $1 ORDER BY user_id`

	rows, err := r.db.QueryContext(ctx, query, domain.AccessPublic)
	if err != nil {
		r.logger.Error("Failed to list public profiles", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	profiles := []*domain.Profile{}
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Access); err != nil {
			return nil, errors.ErrDatabaseError
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) SetAccess(ctx context.Context, userID int64, access domain.AccessLevel) error {
	query := `UPDATE travel_profile SET access = $2 WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID, access)
	if err != nil {
		r.logger.Error("Failed to set profile access", zap.Int64("user_id", userID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrProfileNotFound
	}

	return nil
}
