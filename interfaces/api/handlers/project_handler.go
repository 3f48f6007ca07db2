package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kanban-api/domain/services"
	"kanban-api/pkg/logger"
	"kanban-api/pkg/utils"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	ctx := c.UserContext()
	projectID := c.Params("id")

	project, err := h.projectService.GetProject(ctx, projectID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch project", "project_id", projectID, "error", err)
		return serviceErrorResponse(c, err, "Project not found")
	}

	return utils.SuccessResponse(c, project)
}
