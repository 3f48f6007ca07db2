package dto

import (
	"time"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo inProgress done"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Labels      []string   `json:"labels" validate:"omitempty,dive,oneof=bug feature enhancement documentation"`
	AssigneeID  *string    `json:"assigneeId" validate:"omitempty,max=64"`
	CreatedBy   string     `json:"createdBy" validate:"omitempty,max=64"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskRequest replaces the provided keys on the stored task. Absent
// keys are left untouched; createdBy is set once at creation and cannot be
// changed here.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo inProgress done"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Labels      []string   `json:"labels" validate:"omitempty,dive,oneof=bug feature enhancement documentation"`
	AssigneeID  *string    `json:"assigneeId" validate:"omitempty,max=64"`
	DueDate     *time.Time `json:"dueDate"`
}

type AddCommentRequest struct {
	UserID  string `json:"userId" validate:"required,max=64"`
	Content string `json:"content" validate:"required,max=2000"`
}

type TaskFilterRequest struct {
	Status     string `query:"status" validate:"omitempty,oneof=todo inProgress done"`
	AssigneeID string `query:"assigneeId" validate:"omitempty,max=64"`
}

type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Priority    string            `json:"priority"`
	Labels      []string          `json:"labels"`
	AssigneeID  *string           `json:"assigneeId"`
	CreatedBy   string            `json:"createdBy"`
	DueDate     *time.Time        `json:"dueDate"`
	Comments    []CommentResponse `json:"comments"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
