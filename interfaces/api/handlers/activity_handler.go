package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kanban-api/domain/dto"
	"kanban-api/domain/services"
	"kanban-api/pkg/logger"
	"kanban-api/pkg/utils"
)

type ActivityHandler struct {
	activityService services.ActivityService
}

func NewActivityHandler(activityService services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

func (h *ActivityHandler) ListActivities(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.ActivityFilterRequest
	if err := c.QueryParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Invalid limit parameter")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	activities, err := h.activityService.ListRecent(ctx, req.Limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list activities", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.ActivityResponse, len(activities))
	for i, a := range activities {
		responses[i] = *dto.ActivityToActivityResponse(a)
	}

	return utils.SuccessResponse(c, responses)
}
