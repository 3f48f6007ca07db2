package repositories

import (
	"context"

	"kanban-api/domain/models"
)

// ActivityRepository is append-only: activities are never updated or
// deleted once written.
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	ListRecent(ctx context.Context, limit int) ([]*models.Activity, error)
}
