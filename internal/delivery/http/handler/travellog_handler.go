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

// TravelLogHandler serves a user's visit records.
type TravelLogHandler struct {
	logUC  *usecase.TravelLogUseCase
	logger *zap.Logger
}

// NewTravelLogHandler creates a new TravelLogHandler.
func NewTravelLogHandler(logUC *usecase.TravelLogUseCase, logger *zap.Logger) *TravelLogHandler {
	return &TravelLogHandler{
		logUC:  logUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Record a visit
// @Description Records a visit to an entity. Arrival defaults to now and the
// @Description rating to 3 when omitted.
// @Tags TravelLogs
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user id"
// @Param request body dto.CreateTravelLogRequest true "Visit record"
// @Success 200 {object} utils.SuccessResponse{data=dto.TravelLogDTO}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/logs [post]
func (h *TravelLogHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTravelLogRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.logUC.Create(c.Context(), middleware.IdentityFrom(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary List the caller's visits
// @Description Returns the caller's visits newest-first.
// @Tags TravelLogs
// @Produce json
// @Param X-User-ID header int true "Authenticated user id"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} utils.SuccessResponse{data=dto.TravelLogListResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/logs [get]
func (h *TravelLogHandler) List(c *fiber.Ctx) error {
	result, err := h.logUC.List(c.Context(), middleware.IdentityFrom(c), c.QueryInt("limit", 0))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// UpdateNotes godoc
// @Summary Update the notes of a visit
// @Description Replaces the notes of the caller's own entry.
// @Tags TravelLogs
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user id"
// @Param id path int true "Travel log id"
// @Param request body dto.UpdateNotesRequest true "New notes"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/logs/{id}/notes [put]
func (h *TravelLogHandler) UpdateNotes(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	if err := h.logUC.UpdateNotes(c.Context(), middleware.IdentityFrom(c), int64(id), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"updated": true}, nil)
}

// Checklist godoc
// @Summary Visit counts per entity
// @Description Maps entity id to the caller's visit count, for ticking off
// @Description bucket list progress.
// @Tags TravelLogs
// @Produce json
// @Param X-User-ID header int true "Authenticated user id"
// @Success 200 {object} utils.SuccessResponse{data=dto.ChecklistResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/logs/checklist [get]
func (h *TravelLogHandler) Checklist(c *fiber.Ctx) error {
	result, err := h.logUC.Checklist(c.Context(), middleware.IdentityFrom(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}
