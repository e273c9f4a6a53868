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

func countryType() *domain.EntityType {
	return &domain.EntityType{ID: 2, Abbr: domain.TypeCountry, Title: "Country"}
}

func testCountry(id int64, code, name string) *domain.Entity {
	return &domain.Entity{
		ID:       id,
		Code:     code,
		Name:     name,
		FullName: name,
		Type:     countryType(),
	}
}

func TestEntityUseCase_Resolve(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		entityRepo := &MockEntityRepository{}
		typeRepo := &MockEntityTypeRepository{}
		infoRepo := &MockEntityInfoRepository{}
		uc := usecase.NewEntityUseCase(entityRepo, typeRepo, infoRepo, logger)

		typeRepo.On("GetByAbbr", ctx, "co").Return(countryType(), nil)
		entityRepo.On("Find", ctx, "co", "XX", "").Return([]*domain.Entity{}, nil)

		_, err := uc.Resolve(ctx, dto.ResolveRequest{Type: "co", Code: "XX"})
		assert.ErrorIs(t, err, errors.ErrEntityNotFound)
	})

	t.Run("single match returns detail", func(t *testing.T) {
		entityRepo := &MockEntityRepository{}
		typeRepo := &MockEntityTypeRepository{}
		infoRepo := &MockEntityInfoRepository{}
		uc := usecase.NewEntityUseCase(entityRepo, typeRepo, infoRepo, logger)

		france := testCountry(2, "FR", "France")
		typeRepo.On("GetByAbbr", ctx, "co").Return(countryType(), nil)
		entityRepo.On("Find", ctx, "co", "FR", "").Return([]*domain.Entity{france}, nil)
		infoRepo.On("GetByEntityID", ctx, int64(2)).Return(nil, nil)

		resp, err := uc.Resolve(ctx, dto.ResolveRequest{Type: "co", Code: "FR"})
		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Count)
		assert.NotNil(t, resp.Entity)
		assert.Equal(t, "France", resp.Entity.Name)
		assert.Empty(t, resp.Candidates)
	})

	t.Run("ambiguous code returns candidates", func(t *testing.T) {
		entityRepo := &MockEntityRepository{}
		typeRepo := &MockEntityTypeRepository{}
		infoRepo := &MockEntityInfoRepository{}
		uc := usecase.NewEntityUseCase(entityRepo, typeRepo, infoRepo, logger)

		cityType := &domain.EntityType{ID: 4, Abbr: domain.TypeCity, Title: "City"}
		hits := []*domain.Entity{
			{ID: 10, Code: "SPR", Name: "Springfield", Type: cityType},
			{ID: 11, Code: "SPR", Name: "Springfield", Type: cityType},
		}
		typeRepo.On("GetByAbbr", ctx, "ct").Return(cityType, nil)
		entityRepo.On("Find", ctx, "ct", "SPR", "").Return(hits, nil)

		resp, err := uc.Resolve(ctx, dto.ResolveRequest{Type: "ct", Code: "SPR"})
		assert.NoError(t, err)
		assert.Nil(t, resp.Entity)
		assert.Len(t, resp.Candidates, 2)
		assert.Equal(t, 2, resp.Count)
		infoRepo.AssertNotCalled(t, "GetByEntityID", mock.Anything, mock.Anything)
	})

	t.Run("prefixed code rewritten to aux form", func(t *testing.T) {
		entityRepo := &MockEntityRepository{}
		typeRepo := &MockEntityTypeRepository{}
		infoRepo := &MockEntityInfoRepository{}
		uc := usecase.NewEntityUseCase(entityRepo, typeRepo, infoRepo, logger)

		whType := &domain.EntityType{ID: 6, Abbr: domain.TypeHeritageSite, Title: "World Heritage Site"}
		site := &domain.Entity{ID: 7, Code: "83", Name: "Palace of Versailles", Type: whType}
		typeRepo.On("GetByAbbr", ctx, "wh").Return(whType, nil)
		entityRepo.On("Find", ctx, "wh", "83", "FR").Return([]*domain.Entity{site}, nil)

		resp, err := uc.Resolve(ctx, dto.ResolveRequest{Type: "wh", Code: "FR-83"})
		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Count)
		entityRepo.AssertExpectations(t)
	})

	t.Run("unknown type", func(t *testing.T) {
		entityRepo := &MockEntityRepository{}
		typeRepo := &MockEntityTypeRepository{}
		infoRepo := &MockEntityInfoRepository{}
		uc := usecase.NewEntityUseCase(entityRepo, typeRepo, infoRepo, logger)

		typeRepo.On("GetByAbbr", ctx, "zz").Return(nil, errors.ErrEntityTypeNotFound)

		_, err := uc.Resolve(ctx, dto.ResolveRequest{Type: "zz", Code: "FR"})
		assert.ErrorIs(t, err, errors.ErrEntityTypeNotFound)
	})
}

func TestEntityUseCase_RelatedTypes(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	entityRepo := &MockEntityRepository{}
	typeRepo := &MockEntityTypeRepository{}
	infoRepo := &MockEntityInfoRepository{}
	uc := usecase.NewEntityUseCase(entityRepo, typeRepo, infoRepo, logger)

	france := testCountry(2, "FR", "France")
	entityRepo.On("Find", ctx, "co", "FR", "").Return([]*domain.Entity{france}, nil)
	entityRepo.On("RelatedTypes", ctx, france).Return([]domain.RelatedTypeCount{
		{Abbr: domain.TypeCity, Count: 12},
		{Abbr: domain.TypeState, Count: 3},
	}, nil)

	resp, err := uc.RelatedTypes(ctx, dto.ResolveRequest{Type: "co", Code: "FR"})
	assert.NoError(t, err)
	assert.Len(t, resp.Counts, 2)
	assert.Equal(t, "Cities", resp.Counts[0].Title)
	assert.Equal(t, 12, resp.Counts[0].Count)
}
