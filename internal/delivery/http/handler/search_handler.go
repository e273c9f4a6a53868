package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travelog-service/internal/pkg/errors"
	"github.com/travelog-service/internal/pkg/utils"
	"github.com/travelog-service/internal/pkg/validator"
	"github.com/travelog-service/internal/usecase"
	"github.com/travelog-service/internal/usecase/dto"
)

// SearchHandler serves text search over the entity catalogue.
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Search entities by name or code
// @Description Substring match against name, full name and locality, plus an
// @Description exact case-insensitive match on code. A blank query returns an
// @Description empty result.
// @Tags Search
// @Produce json
// @Param q query string true "Search term"
// @Param type query string false "Restrict to one type tag"
// @Param limit query int false "Maximum number of results" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{
		Query: c.Query("q"),
		Type:  c.Query("type"),
		Limit: c.QueryInt("limit", 0),
	}

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// AdvancedSearch godoc
// @Summary Search entities with several terms
// @Description Unions the match sets of up to ten terms in one query.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.AdvancedSearchRequest true "Search terms"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/search/advanced [post]
func (h *SearchHandler) AdvancedSearch(c *fiber.Ctx) error {
	var req dto.AdvancedSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.searchUC.AdvancedSearch(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}
