package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/usecase"
	"github.com/travelog-service/internal/usecase/dto"
)

func TestSearchUseCase_Search(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("blank query returns empty without querying", func(t *testing.T) {
		entityRepo := &MockEntityRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewSearchUseCase(entityRepo, cacheRepo, logger, time.Minute)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "   "})
		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.Empty(t, resp.Results)
		entityRepo.AssertNotCalled(t, "AdvancedSearch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		cacheRepo.AssertNotCalled(t, "GetSearch", mock.Anything, mock.Anything)
	})

	t.Run("cache miss queries and stores", func(t *testing.T) {
		entityRepo := &MockEntityRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewSearchUseCase(entityRepo, cacheRepo, logger, time.Minute)

		hits := []*domain.Entity{testCountry(2, "FR", "France")}
		cacheRepo.On("GetSearch", ctx, mock.Anything).Return(nil, nil)
		entityRepo.On("AdvancedSearch", ctx, []string{"france"}, "", 0).Return(hits, nil)
		cacheRepo.On("SetSearch", ctx, mock.Anything, mock.Anything, time.Minute).Return(nil)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: " france "})
		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "France", resp.Results[0].Name)
		cacheRepo.AssertExpectations(t)
		entityRepo.AssertExpectations(t)
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		entityRepo := &MockEntityRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewSearchUseCase(entityRepo, cacheRepo, logger, time.Minute)

		cached, _ := json.Marshal(dto.SearchResponse{
			Results: []*dto.EntityDTO{{ID: 2, Name: "France"}},
			Total:   1,
		})
		cacheRepo.On("GetSearch", ctx, mock.Anything).Return(cached, nil)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "france"})
		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "France", resp.Results[0].Name)
		entityRepo.AssertNotCalled(t, "AdvancedSearch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSearchUseCase_AdvancedSearch(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	entityRepo := &MockEntityRepository{}
	cacheRepo := &MockCacheRepository{}
	uc := usecase.NewSearchUseCase(entityRepo, cacheRepo, logger, time.Minute)

	// Blank terms are trimmed away before the repository sees them.
	hits := []*domain.Entity{testCountry(3, "ES", "Spain")}
	cacheRepo.On("GetSearch", ctx, mock.Anything).Return(nil, nil)
	entityRepo.On("AdvancedSearch", ctx, []string{"spain"}, "co", 5).Return(hits, nil)
	cacheRepo.On("SetSearch", ctx, mock.Anything, mock.Anything, time.Minute).Return(nil)

	resp, err := uc.AdvancedSearch(ctx, dto.AdvancedSearchRequest{
		Terms: []string{"  ", "spain", ""},
		Type:  "co",
		Limit: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	entityRepo.AssertExpectations(t)
}
