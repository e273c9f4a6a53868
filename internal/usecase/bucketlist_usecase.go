package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/domain/repository"
	"github.com/travelog-service/internal/pkg/errors"
	"github.com/travelog-service/internal/usecase/dto"
)

// BucketListUseCase manages entity collections and the viewer's progress
// through them.
type BucketListUseCase struct {
	bucketRepo repository.BucketListRepository
	logRepo    repository.TravelLogRepository
	logger     *zap.Logger
}

func NewBucketListUseCase(
	bucketRepo repository.BucketListRepository,
	logRepo repository.TravelLogRepository,
	logger *zap.Logger,
) *BucketListUseCase {
	return &BucketListUseCase{
		bucketRepo: bucketRepo,
		logRepo:    logRepo,
		logger:     logger,
	}
}

// Lists returns every bucket list visible to the viewer.
func (uc *BucketListUseCase) Lists(ctx context.Context, user domain.Identity) (*dto.BucketListsResponse, error) {
	lists, err := uc.bucketRepo.ForUser(ctx, user)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.BucketListDTO, 0, len(lists))
	for _, list := range lists {
		out = append(out, dto.ConvertBucketList(list))
	}

	return &dto.BucketListsResponse{Lists: out, Total: len(out)}, nil
}

// Get returns one list with its members and, for authenticated viewers, the
// per-entity visit counts and done tally. A list the viewer cannot see is
// indistinguishable from a missing one.
func (uc *BucketListUseCase) Get(ctx context.Context, user domain.Identity, id int64) (*dto.BucketListDetailResponse, error) {
	list, err := uc.bucketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !list.VisibleTo(user) {
		return nil, errors.ErrBucketListNotFound
	}

	entities, err := uc.bucketRepo.Entities(ctx, id)
	if err != nil {
		return nil, err
	}

	visits := map[int64]int{}
	if user.Authenticated && len(entities) > 0 {
		ids := make([]int64, 0, len(entities))
		for _, e := range entities {
			ids = append(ids, e.ID)
		}
		visits, err = uc.logRepo.CountForEntities(ctx, user.ID, ids)
		if err != nil {
			return nil, err
		}
	}

	results := make([]dto.BucketResultDTO, 0, len(entities))
	done := 0
	for _, e := range entities {
		count := visits[e.ID]
		if count > 0 {
			done++
		}
		results = append(results, dto.BucketResultDTO{
			Entity:     dto.ConvertEntitySummary(e),
			VisitCount: count,
		})
	}

	return &dto.BucketListDetailResponse{
		List:    dto.ConvertBucketList(list),
		Results: results,
		Done:    done,
		Total:   len(results),
	}, nil
}

// Create makes a new list owned by the caller.
func (uc *BucketListUseCase) Create(ctx context.Context, user domain.Identity, req dto.CreateBucketListRequest) (*dto.BucketListDTO, error) {
	if !user.Authenticated {
		return nil, errors.ErrUnauthenticated
	}

	owner := user.ID
	list := &domain.BucketList{
		OwnerID:     &owner,
		Title:       req.Title,
		IsPublic:    req.IsPublic,
		Description: req.Description,
	}
	if err := uc.bucketRepo.Create(ctx, list); err != nil {
		return nil, err
	}

	uc.logger.Info("Bucket list created",
		zap.Int64("list_id", list.ID),
		zap.Int64("owner_id", owner),
	)

	return dto.ConvertBucketList(list), nil
}

// AddEntities attaches entities to the caller's own list.
func (uc *BucketListUseCase) AddEntities(ctx context.Context, user domain.Identity, id int64, req dto.AddBucketEntitiesRequest) error {
	if err := uc.requireOwner(ctx, user, id); err != nil {
		return err
	}
	return uc.bucketRepo.AddEntities(ctx, id, req.EntityIDs)
}

// RemoveEntity detaches one entity from the caller's own list.
func (uc *BucketListUseCase) RemoveEntity(ctx context.Context, user domain.Identity, id, entityID int64) error {
	if err := uc.requireOwner(ctx, user, id); err != nil {
		return err
	}
	return uc.bucketRepo.RemoveEntity(ctx, id, entityID)
}

// Seeded lists have no owner and stay read-only through the API.
func (uc *BucketListUseCase) requireOwner(ctx context.Context, user domain.Identity, id int64) error {
	if !user.Authenticated {
		return errors.ErrUnauthenticated
	}

	list, err := uc.bucketRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !list.VisibleTo(user) {
		return errors.ErrBucketListNotFound
	}
	if list.OwnerID == nil || *list.OwnerID != user.ID {
		return errors.ErrForbidden
	}
	return nil
}
