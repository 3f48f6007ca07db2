package repositories

import (
	"context"

	"kanban-api/domain/models"
)

// TaskFilter narrows List to an optional conjunction of status and assignee
// equality. Zero values mean "no constraint".
type TaskFilter struct {
	Status     string
	AssigneeID string
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TaskFilter) ([]*models.Task, error)
}
