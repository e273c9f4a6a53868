package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/pkg/errors"
	"github.com/travelog-service/internal/usecase"
	"github.com/travelog-service/internal/usecase/dto"
)

func TestProfileUseCase_Get(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("unauthenticated", func(t *testing.T) {
		profileRepo := &MockProfileRepository{}
		logRepo := &MockTravelLogRepository{}
		entityRepo := &MockEntityRepository{}
		uc := usecase.NewProfileUseCase(profileRepo, logRepo, entityRepo, logger)

		_, err := uc.Get(ctx, domain.Identity{})
		assert.ErrorIs(t, err, errors.ErrUnauthenticated)
	})

	t.Run("returns the stored profile", func(t *testing.T) {
		profileRepo := &MockProfileRepository{}
		logRepo := &MockTravelLogRepository{}
		entityRepo := &MockEntityRepository{}
		uc := usecase.NewProfileUseCase(profileRepo, logRepo, entityRepo, logger)

		profileRepo.On("ForUser", ctx, int64(1)).
			Return(&domain.Profile{UserID: 1, Access: domain.AccessProtected}, nil)

		resp, err := uc.Get(ctx, authedUser(1))
		assert.NoError(t, err)
		assert.Equal(t, string(domain.AccessProtected), resp.Access)
	})
}

func TestProfileUseCase_SetAccess(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	profileRepo := &MockProfileRepository{}
	logRepo := &MockTravelLogRepository{}
	entityRepo := &MockEntityRepository{}
	uc := usecase.NewProfileUseCase(profileRepo, logRepo, entityRepo, logger)

	profileRepo.On("ForUser", ctx, int64(1)).
		Return(&domain.Profile{UserID: 1, Access: domain.AccessPublic}, nil)
	profileRepo.On("SetAccess", ctx, int64(1), domain.AccessPublic).Return(nil)

	resp, err := uc.SetAccess(ctx, authedUser(1), dto.SetAccessRequest{Access: "PUB"})
	assert.NoError(t, err)
	assert.Equal(t, "PUB", resp.Access)
	profileRepo.AssertExpectations(t)
}

func TestProfileUseCase_History(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("private profile hidden from others", func(t *testing.T) {
		profileRepo := &MockProfileRepository{}
		logRepo := &MockTravelLogRepository{}
		entityRepo := &MockEntityRepository{}
		uc := usecase.NewProfileUseCase(profileRepo, logRepo, entityRepo, logger)

		profileRepo.On("GetByUserID", ctx, int64(2)).
			Return(&domain.Profile{UserID: 2, Access: domain.AccessPrivate}, nil)

		_, err := uc.History(ctx, authedUser(1), 2)
		assert.ErrorIs(t, err, errors.ErrForbidden)
		logRepo.AssertNotCalled(t, "UserHistory", mock.Anything, mock.Anything)
	})

	t.Run("protected profile visible to any authenticated viewer", func(t *testing.T) {
		profileRepo := &MockProfileRepository{}
		logRepo := &MockTravelLogRepository{}
		entityRepo := &MockEntityRepository{}
		uc := usecase.NewProfileUseCase(profileRepo, logRepo, entityRepo, logger)

		arrival := time.Date(2019, 7, 14, 10, 30, 0, 0, time.UTC)
		paris := &domain.Entity{ID: 4, Code: "PAR", Name: "Paris"}
		logs := []*domain.TravelLog{
			{ID: 1, UserID: 2, EntityID: 4, Arrival: arrival, Rating: 5},
			{ID: 2, UserID: 2, EntityID: 4, Arrival: arrival.AddDate(1, 0, 0), Rating: 4},
		}
		profileRepo.On("GetByUserID", ctx, int64(2)).
			Return(&domain.Profile{UserID: 2, Access: domain.AccessProtected}, nil)
		logRepo.On("UserHistory", ctx, int64(2)).Return([]*domain.Entity{paris}, logs, nil)
		entityRepo.On("LoadRelated", ctx, mock.Anything, mock.Anything).Return(nil)

		resp, err := uc.History(ctx, authedUser(1), 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), resp.UserID)
		assert.Equal(t, 2, resp.Visits)
		assert.Len(t, resp.Entities, 1)
		assert.Len(t, resp.Entities[0].Visits, 2)
		assert.Equal(t, 5, resp.Entities[0].Visits[0].Rating)
	})

	t.Run("anonymous viewer blocked from protected profile", func(t *testing.T) {
		profileRepo := &MockProfileRepository{}
		logRepo := &MockTravelLogRepository{}
		entityRepo := &MockEntityRepository{}
		uc := usecase.NewProfileUseCase(profileRepo, logRepo, entityRepo, logger)

		profileRepo.On("GetByUserID", ctx, int64(2)).
			Return(&domain.Profile{UserID: 2, Access: domain.AccessProtected}, nil)

		_, err := uc.History(ctx, domain.Identity{}, 2)
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("missing profile defaults to protected without creating a row", func(t *testing.T) {
		profileRepo := &MockProfileRepository{}
		logRepo := &MockTravelLogRepository{}
		entityRepo := &MockEntityRepository{}
		uc := usecase.NewProfileUseCase(profileRepo, logRepo, entityRepo, logger)

		profileRepo.On("GetByUserID", ctx, int64(999)).Return(nil, errors.ErrProfileNotFound)
		logRepo.On("UserHistory", ctx, int64(999)).Return([]*domain.Entity{}, []*domain.TravelLog{}, nil)
		entityRepo.On("LoadRelated", ctx, mock.Anything, mock.Anything).Return(nil)

		resp, err := uc.History(ctx, authedUser(1), 999)
		assert.NoError(t, err)
		assert.Equal(t, int64(999), resp.UserID)
		assert.Equal(t, 0, resp.Visits)
		profileRepo.AssertNotCalled(t, "ForUser", mock.Anything, mock.Anything)

		_, err = uc.History(ctx, domain.Identity{}, 999)
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})
}
