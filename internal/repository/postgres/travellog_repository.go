package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/domain/repository"
	"github.com/travelog-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type travelLogRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTravelLogRepository(db *DB) repository.TravelLogRepository {
	return &travelLogRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *travelLogRepository) Create(ctx context.Context, log *domain.TravelLog) error {
	query := `
		INSERT INTO travel_log (arrival, rating, user_id, notes, entity_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		log.Arrival, log.Rating, log.UserID, log.Notes, log.EntityID,
	).Scan(&log.ID)
	if err != nil {
		r.logger.Error("Failed to create travel log",
			zap.Int64("user_id", log.UserID),
			zap.Int64("entity_id", log.EntityID),
			zap.Error(err),
		)
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *travelLogRepository) GetByID(ctx context.Context, id int64) (*domain.TravelLog, error) {
	query := `
		SELECT id, arrival, rating, user_id, notes, entity_id
		FROM travel_log
		WHERE id = $1`

	var log domain.TravelLog
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&log.ID, &log.Arrival, &log.Rating, &log.UserID, &log.Notes, &log.EntityID,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTravelLogNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get travel log", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &log, nil
}

func (r *travelLogRepository) UpdateNotes(ctx context.Context, id int64, notes string) error {
	return r.update(ctx, `UPDATE travel_log SET notes = $2 WHERE id = $1`, id, notes)
}

func (r *travelLogRepository) UpdateRating(ctx context.Context, id int64, rating int) error {
	return r.update(ctx, `UPDATE travel_log SET rating = $2 WHERE id = $1`, id, rating)
}

func (r *travelLogRepository) update(ctx context.Context, query string, id int64, value interface{}) error {
	result, err := r.db.ExecContext(ctx, query, id, value)
	if err != nil {
		r.logger.Error("Failed to update travel log", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTravelLogNotFound
	}

	return nil
}

func (r *travelLogRepository) ListForUser(ctx context.Context, userID int64, limit int) ([]*domain.TravelLog, error) {
	query := `
		SELECT id, arrival, rating, user_id, notes, entity_id
		FROM travel_log
		WHERE user_id = $1
		ORDER BY arrival DESC, id DESC`

	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list travel logs", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return scanLogs(rows)
}

func (r *travelLogRepository) Checklist(ctx context.Context, userID int64) (map[int64]int, error) {
	query := `
		SELECT entity_id, COUNT(*) AS count
		FROM travel_log
		WHERE user_id = $1
		GROUP BY entity_id`

	return r.countRows(ctx, query, userID)
}

func (r *travelLogRepository) CountForEntities(ctx context.Context, userID int64, entityIDs []int64) (map[int64]int, error) {
	if len(entityIDs) == 0 {
		return map[int64]int{}, nil
	}

	query := `
		SELECT entity_id, COUNT(*) AS count
		FROM travel_log
		WHERE user_id = $1 AND entity_id = ANY($2)
		GROUP BY entity_id`

	return r.countRows(ctx, query, userID, pq.Array(entityIDs))
}

func (r *travelLogRepository) countRows(ctx context.Context, query string, args ...interface{}) (map[int64]int, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to count travel logs", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var entityID int64
		var count int
		if err := rows.Scan(&entityID, &count); err != nil {
			return nil, errors.ErrDatabaseError
		}
		counts[entityID] = count
	}
	return counts, rows.Err()
}

func (r *travelLogRepository) UserHistory(ctx context.Context, userID int64) ([]*domain.Entity, []*domain.TravelLog, error) {
	entityQuery := `
		SELECT DISTINCT` + entityColumns + `
		FROM travel_entity e
		JOIN travel_log tl ON tl.entity_id = e.id
		WHERE tl.user_id = $1
		ORDER BY e.name`

	rows, err := r.db.QueryContext(ctx, entityQuery, userID)
	if err != nil {
		r.logger.Error("Failed to load visited entities", zap.Int64("user_id", userID), zap.Error(err))
		return nil, nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	entities := []*domain.Entity{}
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, nil, errors.ErrDatabaseError
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, errors.ErrDatabaseError
	}

	logs, err := r.ListForUser(ctx, userID, 0)
	if err != nil {
		return nil, nil, err
	}

	return entities, logs, nil
}

func scanLogs(rows *sql.Rows) ([]*domain.TravelLog, error) {
	logs := []*domain.TravelLog{}
	for rows.Next() {
		var log domain.TravelLog
		err := rows.Scan(
			&log.ID, &log.Arrival, &log.Rating, &log.UserID, &log.Notes, &log.EntityID,
		)
		if err != nil {
			return nil, errors.ErrDatabaseError
		}
		logs = append(logs, &log)
	}
	return logs, rows.Err()
}
