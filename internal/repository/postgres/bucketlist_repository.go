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

type bucketListRepository struct {
	db       *sqlx.DB
	entities repository.EntityRepository
	logger   *zap.Logger
}

func NewBucketListRepository(db *DB, entities repository.EntityRepository) repository.BucketListRepository {
	return &bucketListRepository{
		db:       db.DB,
		entities: entities,
		logger:   db.logger,
	}
}

const bucketListColumns = `id, owner_id, title, is_public, description, last_update`

func scanBucketList(s rowScanner) (*domain.BucketList, error) {
	var list domain.BucketList
	var ownerID sql.NullInt64

	err := s.Scan(
		&list.ID, &ownerID, &list.Title, &list.IsPublic,
		&list.Description, &list.LastUpdate,
	)
	if err != nil {
		return nil, err
	}

	list.OwnerID = nullID(ownerID)
	return &list, nil
}

func (r *bucketListRepository) GetByID(ctx context.Context, id int64) (*domain.BucketList, error) {
	query := `SELECT ` + bucketListColumns + ` FROM travel_bucket_list WHERE id = $1`

	list, err := scanBucketList(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrBucketListNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get bucket list", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return list, nil
}

func (r *bucketListRepository) ForUser(ctx context.Context, user domain.Identity) ([]*domain.BucketList, error) {
	query := `SELECT ` + bucketListColumns + `
		FROM travel_bucket_list
		WHERE is_public = TRUE`
	args := []interface{}{}

	if user.Authenticated {
		query += ` OR owner_id = $1`
		args = append(args, user.ID)
	}
	query += ` ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list bucket lists", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	lists := []*domain.BucketList{}
	for rows.Next() {
		list, err := scanBucketList(rows)
		if err != nil {
			return nil, errors.ErrDatabaseError
		}
		lists = append(lists, list)
	}
	return lists, rows.Err()
}

func (r *bucketListRepository) Create(ctx context.Context, list *domain.BucketList) error {
	query := `
		INSERT INTO travel_bucket_list (owner_id, title, is_public, description, last_update)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, last_update`

	var ownerID interface{}
	if list.OwnerID != nil {
		ownerID = *list.OwnerID
	}

	err := r.db.QueryRowContext(ctx, query,
		ownerID, list.Title, list.IsPublic, list.Description,
	).Scan(&list.ID, &list.LastUpdate)
	if err != nil {
		r.logger.Error("Failed to create bucket list", zap.String("title", list.Title), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *bucketListRepository) Entities(ctx context.Context, listID int64) ([]*domain.Entity, error) {
	query := `SELECT` + entityColumns + `
		FROM travel_entity e
		JOIN travel_bucket_list_entities le ON le.entity_id = e.id
		WHERE le.list_id = $1
		ORDER BY e.name`

	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		r.logger.Error("Failed to load bucket list entities", zap.Int64("list_id", listID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	entities := []*domain.Entity{}
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, errors.ErrDatabaseError
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}

	related := []string{
		domain.RelType, domain.RelFlag, domain.RelState, domain.RelCountry,
	}
	if err := r.entities.LoadRelated(ctx, entities, related); err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *bucketListRepository) AddEntities(ctx context.Context, listID int64, entityIDs []int64) error {
	if len(entityIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO travel_bucket_list_entities (list_id, entity_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, listID, pq.Array(entityIDs)); err != nil {
		r.logger.Error("Failed to add bucket list entities", zap.Int64("list_id", listID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return r.touch(ctx, listID)
}

func (r *bucketListRepository) RemoveEntity(ctx context.Context, listID, entityID int64) error {
	query := `DELETE FROM travel_bucket_list_entities WHERE list_id = $1 AND entity_id = $2`

	if _, err := r.db.ExecContext(ctx, query, listID, entityID); err != nil {
		r.logger.Error("Failed to remove bucket list entity",
			zap.Int64("list_id", listID),
			zap.Int64("entity_id", entityID),
			zap.Error(err),
		)
		return errors.ErrDatabaseError
	}

	return r.touch(ctx, listID)
}

func (r *bucketListRepository) touch(ctx context.Context, listID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE travel_bucket_list SET last_update = NOW() WHERE id = $1`, listID,
	); err != nil {
		r.logger.Error("Failed to touch bucket list", zap.Int64("list_id", listID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}
