package serviceimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kanban-api/domain/dto"
	"kanban-api/domain/models"
	"kanban-api/domain/repositories"
	"kanban-api/domain/services"
	"kanban-api/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo   repositories.TaskRepository
	activities services.ActivityService
}

func NewTaskService(taskRepo repositories.TaskRepository, activities services.ActivityService) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:   taskRepo,
		activities: activities,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", services.ErrInvalidInput)
	}

	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	labels := req.Labels
	if labels == nil {
		labels = []string{}
	}

	now := time.Now()
	task := &models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		Labels:      labels,
		AssigneeID:  req.AssigneeID,
		CreatedBy:   req.CreatedBy,
		DueDate:     req.DueDate,
		Comments:    []models.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "title", title, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "status", task.Status)

	s.recordActivity(ctx, task.CreatedBy, fmt.Sprintf("created task '%s'", task.Title), &task.ID)

	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID string, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	prevStatus := task.Status

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", services.ErrInvalidInput)
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		// Any status may follow any other; there is no transition table.
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Labels != nil {
		task.Labels = req.Labels
	}
	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	if task.Status != prevStatus {
		logger.InfoContext(ctx, "Task moved", "task_id", taskID, "from", prevStatus, "to", task.Status)
		s.recordActivity(ctx, task.CreatedBy,
			fmt.Sprintf("moved task '%s' to %s", task.Title, models.StatusLabel(task.Status)), &task.ID)
	}

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID string) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)

	// Delete entries carry no task id; the row they would point at is gone.
	s.recordActivity(ctx, task.CreatedBy, fmt.Sprintf("deleted task '%s'", task.Title), nil)

	return nil
}

func (s *TaskServiceImpl) AddComment(ctx context.Context, taskID string, req *dto.AddCommentRequest) (*models.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", services.ErrInvalidInput)
	}
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", services.ErrInvalidInput)
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	task.Comments = append(task.Comments, comment)
	task.UpdatedAt = comment.CreatedAt

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to add comment", "task_id", taskID, "error", err)
		return nil, err
	}

	s.recordActivity(ctx, comment.UserID, fmt.Sprintf("commented on task '%s'", task.Title), &task.ID)

	return &comment, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, error) {
	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

// recordActivity appends the audit entry for a mutation that has already
// committed. The two writes are not wrapped in a transaction: if the append
// fails the mutation stands and the trail misses one entry (at most once
// after the mutation succeeds). Callers never see the failure.
func (s *TaskServiceImpl) recordActivity(ctx context.Context, userID, action string, taskID *string) {
	projectID := models.DefaultProjectID
	if _, err := s.activities.Record(ctx, userID, action, taskID, &projectID); err != nil {
		logger.ErrorContext(ctx, "Activity append failed after task mutation", "action", action, "error", err)
	}
}
