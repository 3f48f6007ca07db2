package routes

import (
	"github.com/gofiber/fiber/v2"

	"kanban-api/interfaces/api/handlers"
)

func SetupProjectRoutes(api fiber.Router, h *handlers.Handlers) {
	projects := api.Group("/projects")
	projects.Get("/:id", h.ProjectHandler.GetProject)
}
