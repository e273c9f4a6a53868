package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/travelog-service/internal/domain/repository"
	"github.com/travelog-service/internal/usecase/dto"
)

// SearchUseCase answers entity searches, with responses cached in Redis.
type SearchUseCase struct {
	entityRepo repository.EntityRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

func NewSearchUseCase(
	entityRepo repository.EntityRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		entityRepo: entityRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// Search matches a single term.
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	return uc.search(ctx, []string{req.Query}, req.Type, req.Limit)
}

// AdvancedSearch unions the match sets of several terms.
func (uc *SearchUseCase) AdvancedSearch(ctx context.Context, req dto.AdvancedSearchRequest) (*dto.SearchResponse, error) {
	return uc.search(ctx, req.Terms, req.Type, req.Limit)
}

func (uc *SearchUseCase) search(ctx context.Context, terms []string, abbr string, limit int) (*dto.SearchResponse, error) {
	cleaned := make([]string, 0, len(terms))
	for _, term := range terms {
		if trimmed := strings.TrimSpace(term); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	// Blank input is an empty result, never a query.
	if len(cleaned) == 0 {
		return &dto.SearchResponse{Results: []*dto.EntityDTO{}, Total: 0}, nil
	}

	key := searchCacheKey(cleaned, abbr, limit)
	if cached := uc.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	entities, err := uc.entityRepo.AdvancedSearch(ctx, cleaned, abbr, limit)
	if err != nil {
		uc.logger.Error("Failed to search entities", zap.Strings("terms", cleaned), zap.Error(err))
		return nil, err
	}

	resp := &dto.SearchResponse{
		Results: dto.ConvertEntities(entities),
		Total:   len(entities),
	}
	uc.toCache(ctx, key, resp)

	return resp, nil
}

func (uc *SearchUseCase) fromCache(ctx context.Context, key string) *dto.SearchResponse {
	data, err := uc.cacheRepo.GetSearch(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var resp dto.SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("Failed to unmarshal cached search response",
			zap.String("key", key),
			zap.Error(err))
		return nil
	}
	return &resp
}

func (uc *SearchUseCase) toCache(ctx context.Context, key string, resp *dto.SearchResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("Failed to marshal search response", zap.String("key", key), zap.Error(err))
		return
	}
	if err := uc.cacheRepo.SetSearch(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache search response", zap.String("key", key), zap.Error(err))
	}
}

func searchCacheKey(terms []string, abbr string, limit int) string {
	var b strings.Builder
	if abbr == "" {
		abbr = "any"
	}
	b.WriteString(abbr)
	b.WriteByte(':')
	for i, term := range terms {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strings.ToLower(term))
	}
	if limit > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(limit))
	}
	return b.String()
}
