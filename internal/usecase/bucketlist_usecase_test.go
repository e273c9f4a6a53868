package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/pkg/errors"
	"github.com/travelog-service/internal/usecase"
	"github.com/travelog-service/internal/usecase/dto"
)

func ownedList(id, owner int64, public bool) *domain.BucketList {
	return &domain.BucketList{ID: id, OwnerID: &owner, Title: "Capitals", IsPublic: public}
}

func TestBucketListUseCase_Get(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("hidden private list reads as missing", func(t *testing.T) {
		bucketRepo := &MockBucketListRepository{}
		logRepo := &MockTravelLogRepository{}
		uc := usecase.NewBucketListUseCase(bucketRepo, logRepo, logger)

		bucketRepo.On("GetByID", ctx, int64(5)).Return(ownedList(5, 2, false), nil)

		_, err := uc.Get(ctx, authedUser(1), 5)
		assert.ErrorIs(t, err, errors.ErrBucketListNotFound)
		bucketRepo.AssertNotCalled(t, "Entities", mock.Anything, mock.Anything)
	})

	t.Run("done tally from visit counts", func(t *testing.T) {
		bucketRepo := &MockBucketListRepository{}
		logRepo := &MockTravelLogRepository{}
		uc := usecase.NewBucketListUseCase(bucketRepo, logRepo, logger)

		members := []*domain.Entity{
			{ID: 4, Code: "PAR", Name: "Paris"},
			{ID: 6, Code: "BCN", Name: "Barcelona"},
			{ID: 7, Code: "83", Name: "Palace of Versailles"},
		}
		bucketRepo.On("GetByID", ctx, int64(5)).Return(ownedList(5, 1, true), nil)
		bucketRepo.On("Entities", ctx, int64(5)).Return(members, nil)
		logRepo.On("CountForEntities", ctx, int64(1), []int64{4, 6, 7}).
			Return(map[int64]int{4: 3, 7: 1}, nil)

		resp, err := uc.Get(ctx, authedUser(1), 5)
		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, 2, resp.Done)
		assert.Equal(t, 3, resp.Results[0].VisitCount)
		assert.Equal(t, 0, resp.Results[1].VisitCount)
	})

	t.Run("anonymous viewer gets no counts", func(t *testing.T) {
		bucketRepo := &MockBucketListRepository{}
		logRepo := &MockTravelLogRepository{}
		uc := usecase.NewBucketListUseCase(bucketRepo, logRepo, logger)

		members := []*domain.Entity{{ID: 4, Code: "PAR", Name: "Paris"}}
		bucketRepo.On("GetByID", ctx, int64(5)).Return(ownedList(5, 1, true), nil)
		bucketRepo.On("Entities", ctx, int64(5)).Return(members, nil)

		resp, err := uc.Get(ctx, domain.Identity{}, 5)
		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Done)
		logRepo.AssertNotCalled(t, "CountForEntities", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBucketListUseCase_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("unauthenticated", func(t *testing.T) {
		bucketRepo := &MockBucketListRepository{}
		logRepo := &MockTravelLogRepository{}
		uc := usecase.NewBucketListUseCase(bucketRepo, logRepo, logger)

		_, err := uc.Create(ctx, domain.Identity{}, dto.CreateBucketListRequest{Title: "Mine"})
		assert.ErrorIs(t, err, errors.ErrUnauthenticated)
	})

	t.Run("caller becomes owner", func(t *testing.T) {
		bucketRepo := &MockBucketListRepository{}
		logRepo := &MockTravelLogRepository{}
		uc := usecase.NewBucketListUseCase(bucketRepo, logRepo, logger)

		bucketRepo.On("Create", ctx, mock.MatchedBy(func(list *domain.BucketList) bool {
			return list.OwnerID != nil && *list.OwnerID == int64(1) && list.Title == "Mine"
		})).Return(nil)

		resp, err := uc.Create(ctx, authedUser(1), dto.CreateBucketListRequest{Title: "Mine"})
		assert.NoError(t, err)
		assert.Equal(t, "Mine", resp.Title)
		bucketRepo.AssertExpectations(t)
	})
}

func TestBucketListUseCase_AddEntities(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("owner adds", func(t *testing.T) {
		bucketRepo := &MockBucketListRepository{}
		logRepo := &MockTravelLogRepository{}
		uc := usecase.NewBucketListUseCase(bucketRepo, logRepo, logger)

		bucketRepo.On("GetByID", ctx, int64(5)).Return(ownedList(5, 1, false), nil)
		bucketRepo.On("AddEntities", ctx, int64(5), []int64{4, 6}).Return(nil)

		err := uc.AddEntities(ctx, authedUser(1), 5, dto.AddBucketEntitiesRequest{EntityIDs: []int64{4, 6}})
		assert.NoError(t, err)
		bucketRepo.AssertExpectations(t)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		bucketRepo := &MockBucketListRepository{}
		logRepo := &MockTravelLogRepository{}
		uc := usecase.NewBucketListUseCase(bucketRepo, logRepo, logger)

		bucketRepo.On("GetByID", ctx, int64(5)).Return(ownedList(5, 2, true), nil)

		err := uc.AddEntities(ctx, authedUser(1), 5, dto.AddBucketEntitiesRequest{EntityIDs: []int64{4}})
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("seeded list stays read-only", func(t *testing.T) {
		bucketRepo := &MockBucketListRepository{}
		logRepo := &MockTravelLogRepository{}
		uc := usecase.NewBucketListUseCase(bucketRepo, logRepo, logger)

		seeded := &domain.BucketList{ID: 9, Title: "World Heritage", IsPublic: true}
		bucketRepo.On("GetByID", ctx, int64(9)).Return(seeded, nil)

		err := uc.RemoveEntity(ctx, authedUser(1), 9, 4)
		assert.ErrorIs(t, err, errors.ErrForbidden)
		bucketRepo.AssertNotCalled(t, "RemoveEntity", mock.Anything, mock.Anything, mock.Anything)
	})
}
