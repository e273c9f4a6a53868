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

// EntityHandler serves the geographic entity catalogue.
type EntityHandler struct {
	entityUC *usecase.EntityUseCase
	logger   *zap.Logger
}

// NewEntityHandler creates a new EntityHandler.
func NewEntityHandler(entityUC *usecase.EntityUseCase, logger *zap.Logger) *EntityHandler {
	return &EntityHandler{
		entityUC: entityUC,
		logger:   logger,
	}
}

// Types godoc
// @Summary List entity types
// @Description Returns every entity type with its two-letter tag and title.
// @Tags Entities
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.EntityType}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/types [get]
func (h *EntityHandler) Types(c *fiber.Ctx) error {
	types, err := h.entityUC.Types(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, types, &utils.Meta{Total: len(types)})
}

// ListByType godoc
// @Summary List entities of one type
// @Description Returns all entities of the given type, ordered by name.
// @Tags Entities
// @Produce json
// @Param type path string true "Two-letter type tag (cn, co, st, ct, ap, wh, np, lm)"
// @Success 200 {object} utils.SuccessResponse{data=dto.EntityListResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/entities/{type} [get]
func (h *EntityHandler) ListByType(c *fiber.Ctx) error {
	result, err := h.entityUC.ListByType(c.Context(), c.Params("type"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Resolve godoc
// @Summary Resolve an entity by type and code
// @Description Resolves a type tag plus code to one entity. An ambiguous code
// @Description returns the candidate list instead of a detail record. Codes of
// @Description sub-national types may carry a country prefix, e.g. FR-83.
// @Tags Entities
// @Produce json
// @Param type path string true "Two-letter type tag"
// @Param code path string true "Entity code, optionally country-prefixed"
// @Param aux query string false "Country code narrowing the match"
// @Success 200 {object} utils.SuccessResponse{data=dto.ResolveResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/entities/{type}/{code} [get]
func (h *EntityHandler) Resolve(c *fiber.Ctx) error {
	req := dto.ResolveRequest{
		Type: c.Params("type"),
		Code: c.Params("code"),
		Aux:  c.Query("aux"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.entityUC.Resolve(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Count})
}

// RelatedTypes godoc
// @Summary Count related entities per type
// @Description Returns, for one entity, how many entities of each other type
// @Description belong to it. A country reports its cities, states and sites;
// @Description a continent aggregates across its countries.
// @Tags Entities
// @Produce json
// @Param type path string true "Two-letter type tag"
// @Param code path string true "Entity code"
// @Param aux query string false "Country code narrowing the match"
// @Success 200 {object} utils.SuccessResponse{data=dto.RelatedTypesResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/entities/{type}/{code}/related [get]
func (h *EntityHandler) RelatedTypes(c *fiber.Ctx) error {
	req := dto.ResolveRequest{
		Type: c.Params("type"),
		Code: c.Params("code"),
		Aux:  c.Query("aux"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.entityUC.RelatedTypes(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// RelatedByType godoc
// @Summary List related entities of one type
// @Description Returns the entities of the target type that belong to the
// @Description resolved entity, ordered by name.
// @Tags Entities
// @Produce json
// @Param type path string true "Two-letter type tag"
// @Param code path string true "Entity code"
// @Param rel path string true "Two-letter tag of the related type"
// @Param aux query string false "Country code narrowing the match"
// @Success 200 {object} utils.SuccessResponse{data=dto.EntityListResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/entities/{type}/{code}/{rel} [get]
func (h *EntityHandler) RelatedByType(c *fiber.Ctx) error {
	req := dto.ResolveRequest{
		Type: c.Params("type"),
		Code: c.Params("code"),
		Aux:  c.Query("aux"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.entityUC.RelatedByType(c.Context(), req, c.Params("rel"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}
