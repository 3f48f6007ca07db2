package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kanban-api/domain/dto"
	"kanban-api/domain/repositories"
	"kanban-api/domain/services"
	"kanban-api/pkg/logger"
	"kanban-api/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Task validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task creation failed", "error", err)
		return serviceErrorResponse(c, err, "")
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.TaskFilterRequest
	if err := c.QueryParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	tasks, err := h.taskService.ListTasks(ctx, repositories.TaskFilter{
		Status:     req.Status,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	taskID := c.Params("id")

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "task_id", taskID, "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Task validation failed", "task_id", taskID, "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.UpdateTask(ctx, taskID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task update failed", "task_id", taskID, "error", err)
		return serviceErrorResponse(c, err, "Task not found")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	taskID := c.Params("id")

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		logger.WarnContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return serviceErrorResponse(c, err, "Task not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Task deleted successfully"})
}

func (h *TaskHandler) AddComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	taskID := c.Params("taskId")

	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "task_id", taskID, "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Comment validation failed", "task_id", taskID, "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	comment, err := h.taskService.AddComment(ctx, taskID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Comment creation failed", "task_id", taskID, "error", err)
		return serviceErrorResponse(c, err, "Task not found")
	}

	return utils.CreatedResponse(c, dto.CommentResponse{
		ID:        comment.ID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	})
}
