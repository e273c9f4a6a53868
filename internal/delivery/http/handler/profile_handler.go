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

// ProfileHandler serves profile visibility and history exports.
type ProfileHandler struct {
	profileUC *usecase.ProfileUseCase
	logger    *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileUC *usecase.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

// Get godoc
// @Summary Get the caller's profile
// @Description Returns the caller's profile, creating the protected default on
// @Description first access.
// @Tags Profiles
// @Produce json
// @Param X-User-ID header int true "Authenticated user id"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProfileDTO}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	result, err := h.profileUC.Get(c.Context(), middleware.IdentityFrom(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// SetAccess godoc
// @Summary Change the caller's visibility
// @Description Sets the profile to public (PUB), private (PRI) or protected
// @Description (PRO, visible to authenticated users).
// @Tags Profiles
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user id"
// @Param request body dto.SetAccessRequest true "New access level"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProfileDTO}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/profile/access [put]
func (h *ProfileHandler) SetAccess(c *fiber.Ctx) error {
	var req dto.SetAccessRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.profileUC.SetAccess(c.Context(), middleware.IdentityFrom(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Public godoc
// @Summary List public profiles
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ProfilesResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/profiles [get]
func (h *ProfileHandler) Public(c *fiber.Ctx) error {
	result, err := h.profileUC.Public(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// History godoc
// @Summary Export a user's travel history
// @Description Returns everywhere the user has been with their visits, using
// @Description typed JSON envelopes for timestamps and coordinates. Visibility
// @Description follows the profile's access level.
// @Tags Profiles
// @Produce json
// @Param X-User-ID header int false "Authenticated viewer id"
// @Param user path int true "User id to export"
// @Success 200 {object} utils.SuccessResponse{data=dto.HistoryResponse}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/profiles/{user}/history [get]
func (h *ProfileHandler) History(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user")
	if err != nil || userID < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.profileUC.History(c.Context(), middleware.IdentityFrom(c), int64(userID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Visits})
}
