package services

import (
	"context"

	"kanban-api/domain/models"
)

// DefaultActivityLimit is the feed size returned when the client does not
// ask for a specific limit.
const DefaultActivityLimit = 20

// ActivityService appends audit entries and serves the recent feed.
//
// Record is always called after the triggering task mutation has already
// committed. The two writes are not transactional: if Record fails the task
// mutation stands and the audit trail misses one entry.
type ActivityService interface {
	Record(ctx context.Context, userID, action string, taskID, projectID *string) (*models.Activity, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Activity, error)
}
