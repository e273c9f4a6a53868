package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travelog-service/internal/delivery/http/middleware"
	"github.com/travelog-service/internal/pkg/errors"
	"github.com/travelog-service/internal/pkg/utils"
	"github.com/travelog-service/internal/pkg/validator"
	"github.com/travelog-service/internal/usecase"
	"github.com/travelog-service/internal/usecase/dto"
)

// BucketListHandler serves entity collections.
type BucketListHandler struct {
	bucketUC *usecase.BucketListUseCase
	logger   *zap.Logger
}

// NewBucketListHandler creates a new BucketListHandler.
func NewBucketListHandler(bucketUC *usecase.BucketListUseCase, logger *zap.Logger) *BucketListHandler {
	return &BucketListHandler{
		bucketUC: bucketUC,
		logger:   logger,
	}
}

// List godoc
// @Summary List visible bucket lists
// @Description Returns public lists plus, for authenticated callers, their own
// @Description private ones.
// @Tags BucketLists
// @Produce json
// @Param X-User-ID header int false "Authenticated user id"
// @Success 200 {object} utils.SuccessResponse{data=dto.BucketListsResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/buckets [get]
func (h *BucketListHandler) List(c *fiber.Ctx) error {
	result, err := h.bucketUC.Lists(c.Context(), middleware.IdentityFrom(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Get godoc
// @Summary Get one bucket list with progress
// @Description Returns the list, its member entities and, for authenticated
// @Description callers, per-entity visit counts and the done tally.
// @Tags BucketLists
// @Produce json
// @Param X-User-ID header int false "Authenticated user id"
// @Param id path int true "Bucket list id"
// @Success 200 {object} utils.SuccessResponse{data=dto.BucketListDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/buckets/{id} [get]
func (h *BucketListHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.bucketUC.Get(c.Context(), middleware.IdentityFrom(c), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Create godoc
// @Summary Create a bucket list
// @Tags BucketLists
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user id"
// @Param request body dto.CreateBucketListRequest true "List metadata"
// @Success 200 {object} utils.SuccessResponse{data=dto.BucketListDTO}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/buckets [post]
func (h *BucketListHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBucketListRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.bucketUC.Create(c.Context(), middleware.IdentityFrom(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// AddEntities godoc
// @Summary Add entities to a bucket list
// @Description Attaches entities to the caller's own list. Entities already on
// @Description the list are skipped.
// @Tags BucketLists
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user id"
// @Param id path int true "Bucket list id"
// @Param request body dto.AddBucketEntitiesRequest true "Entity ids"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/buckets/{id}/entities [post]
func (h *BucketListHandler) AddEntities(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.AddBucketEntitiesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	if err := h.bucketUC.AddEntities(c.Context(), middleware.IdentityFrom(c), int64(id), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"added": len(req.EntityIDs)}, nil)
}

// RemoveEntity godoc
// @Summary Remove an entity from a bucket list
// @Tags BucketLists
// @Produce json
// @Param X-User-ID header int true "Authenticated user id"
// @Param id path int true "Bucket list id"
// @Param entity_id path int true "Entity id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/buckets/{id}/entities/{entity_id} [delete]
func (h *BucketListHandler) RemoveEntity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	entityID, err := c.ParamsInt("entity_id")
	if err != nil || entityID < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.bucketUC.RemoveEntity(c.Context(), middleware.IdentityFrom(c), int64(id), int64(entityID)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"removed": true}, nil)
}
