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

// FlagHandler queues flag image refreshes.
type FlagHandler struct {
	flagUC *usecase.FlagUseCase
	logger *zap.Logger
}

// NewFlagHandler creates a new FlagHandler.
func NewFlagHandler(flagUC *usecase.FlagUseCase, logger *zap.Logger) *FlagHandler {
	return &FlagHandler{
		flagUC: flagUC,
		logger: logger,
	}
}

// Refresh godoc
// @Summary Queue a flag image refresh
// @Description Validates the entity and queues a background job that fetches
// @Description the new image. Locked flags are never overwritten; the entity
// @Description is repointed at a fresh flag instead.
// @Tags Flags
// @Accept json
// @Produce json
// @Param id path int true "Entity id"
// @Param request body dto.RefreshFlagRequest true "Upstream image URL"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/entities/{id}/flag [post]
func (h *FlagHandler) Refresh(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.RefreshFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	jobID, err := h.flagUC.EnqueueRefresh(c.Context(), int64(id), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"job_id": jobID}, nil)
}
