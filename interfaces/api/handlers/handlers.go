package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"kanban-api/domain/services"
	"kanban-api/pkg/utils"
)

// Services contains everything the handlers need.
type Services struct {
	UserService     services.UserService
	TaskService     services.TaskService
	ActivityService services.ActivityService
	ProjectService  services.ProjectService
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	UserHandler     *UserHandler
	TaskHandler     *TaskHandler
	ActivityHandler *ActivityHandler
	ProjectHandler  *ProjectHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		UserHandler:     NewUserHandler(services.UserService),
		TaskHandler:     NewTaskHandler(services.TaskService),
		ActivityHandler: NewActivityHandler(services.ActivityService),
		ProjectHandler:  NewProjectHandler(services.ProjectService),
	}
}

// serviceErrorResponse maps service-layer errors to the response envelope.
// Unknown errors are storage failures: logged upstream, generic 500 here.
func serviceErrorResponse(c *fiber.Ctx, err error, notFoundMessage string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, notFoundMessage)
	case errors.Is(err, services.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
