package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kanban-api/domain/dto"
	"kanban-api/domain/services"
	"kanban-api/pkg/logger"
	"kanban-api/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.UserResponse, len(users))
	for i, u := range users {
		responses[i] = *dto.UserToUserResponse(u)
	}

	return utils.SuccessResponse(c, responses)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Login validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Login failed", "email", req.Email, "error", err)
		return serviceErrorResponse(c, err, "")
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return utils.SuccessResponse(c, dto.LoginResponse{
		User:  *dto.UserToUserResponse(user),
		Token: token,
	})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Params("id")

	user, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "User lookup failed", "user_id", userID, "error", err)
		return serviceErrorResponse(c, err, "User not found")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
