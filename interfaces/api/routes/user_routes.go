package routes

import (
	"github.com/gofiber/fiber/v2"

	"kanban-api/interfaces/api/handlers"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers) {
	users := api.Group("/users")
	users.Get("/", h.UserHandler.ListUsers)
	users.Post("/login", h.UserHandler.Login)
	users.Get("/:id", h.UserHandler.GetUser)
}
