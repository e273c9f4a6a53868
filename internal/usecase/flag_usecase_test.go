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

func TestFlagUseCase_EnqueueRefresh(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("publishes a job", func(t *testing.T) {
		flagRepo := &MockFlagRepository{}
		entityRepo := &MockEntityRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewFlagUseCase(flagRepo, entityRepo, streamRepo, logger)

		entityRepo.On("GetByID", ctx, int64(2)).Return(testCountry(2, "FR", "France"), nil)
		streamRepo.On("Publish", ctx, domain.StreamFlagRefresh, mock.MatchedBy(func(event domain.FlagRefreshEvent) bool {
			return event.EntityID == int64(2) && event.SourceURL == "https://flags.example/fr.svg"
		})).Return(nil)

		jobID, err := uc.EnqueueRefresh(ctx, 2, dto.RefreshFlagRequest{SourceURL: "https://flags.example/fr.svg"})
		assert.NoError(t, err)
		assert.NotEmpty(t, jobID)
		streamRepo.AssertExpectations(t)
	})

	t.Run("unknown entity", func(t *testing.T) {
		flagRepo := &MockFlagRepository{}
		entityRepo := &MockEntityRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewFlagUseCase(flagRepo, entityRepo, streamRepo, logger)

		entityRepo.On("GetByID", ctx, int64(999)).Return(nil, errors.ErrEntityNotFound)

		_, err := uc.EnqueueRefresh(ctx, 999, dto.RefreshFlagRequest{SourceURL: "https://flags.example/x.svg"})
		assert.ErrorIs(t, err, errors.ErrEntityNotFound)
		streamRepo.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFlagUseCase_Refresh(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("unlocked flag updated in place", func(t *testing.T) {
		flagRepo := &MockFlagRepository{}
		entityRepo := &MockEntityRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewFlagUseCase(flagRepo, entityRepo, streamRepo, logger)

		france := testCountry(2, "FR", "France")
		france.Flag = &domain.Flag{ID: 1, Source: "https://flags.example/old.svg"}
		entityRepo.On("GetByID", ctx, int64(2)).Return(france, nil)
		flagRepo.On("UpdateSource", ctx, int64(1), "https://flags.example/fr.svg").Return(nil)

		flag, err := uc.Refresh(ctx, 2, "https://flags.example/fr.svg")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), flag.ID)
		entityRepo.AssertNotCalled(t, "SetFlag", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("locked flag is preserved", func(t *testing.T) {
		flagRepo := &MockFlagRepository{}
		entityRepo := &MockEntityRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewFlagUseCase(flagRepo, entityRepo, streamRepo, logger)

		europe := &domain.Entity{ID: 1, Code: "EU", Name: "Europe"}
		europe.Flag = &domain.Flag{ID: 3, Source: "https://flags.example/eu.svg", IsLocked: true}
		entityRepo.On("GetByID", ctx, int64(1)).Return(europe, nil)
		flagRepo.On("Create", ctx, mock.MatchedBy(func(f *domain.Flag) bool {
			return f.Source == "https://flags.example/eu2.svg"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Flag).ID = 42
		}).Return(nil)
		entityRepo.On("SetFlag", ctx, int64(1), int64(42)).Return(nil)

		flag, err := uc.Refresh(ctx, 1, "https://flags.example/eu2.svg")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), flag.ID)
		flagRepo.AssertNotCalled(t, "UpdateSource", mock.Anything, mock.Anything, mock.Anything)
		entityRepo.AssertExpectations(t)
	})

	t.Run("entity without a flag gets one", func(t *testing.T) {
		flagRepo := &MockFlagRepository{}
		entityRepo := &MockEntityRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewFlagUseCase(flagRepo, entityRepo, streamRepo, logger)

		bare := &domain.Entity{ID: 5, Code: "IDF", Name: "Île-de-France"}
		entityRepo.On("GetByID", ctx, int64(5)).Return(bare, nil)
		flagRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Flag).ID = 7
		}).Return(nil)
		entityRepo.On("SetFlag", ctx, int64(5), int64(7)).Return(nil)

		flag, err := uc.Refresh(ctx, 5, "https://flags.example/idf.svg")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), flag.ID)
	})
}
