package routes

import (
	"github.com/gofiber/fiber/v2"

	"kanban-api/interfaces/api/handlers"
)

func SetupActivityRoutes(api fiber.Router, h *handlers.Handlers) {
	activities := api.Group("/activities")
	activities.Get("/", h.ActivityHandler.ListActivities)
}
