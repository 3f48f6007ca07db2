package routes

import (
	"github.com/gofiber/fiber/v2"

	"kanban-api/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)

	api := app.Group("/api")

	SetupUserRoutes(api, h)
	SetupTaskRoutes(api, h)
	SetupActivityRoutes(api, h)
	SetupProjectRoutes(api, h)
}
