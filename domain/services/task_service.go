package services

import (
	"context"

	"kanban-api/domain/dto"
	"kanban-api/domain/models"
	"kanban-api/domain/repositories"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID string, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	AddComment(ctx context.Context, taskID string, req *dto.AddCommentRequest) (*models.Comment, error)
	ListTasks(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, error)
}
