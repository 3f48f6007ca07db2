package ports

import (
	"context"
)

// ActivityEvent is the payload fanned out to external consumers whenever an
// audit entry is recorded.
type ActivityEvent struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Action    string  `json:"action"`
	TaskID    *string `json:"taskId,omitempty"`
	ProjectID *string `json:"projectId,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ActivityPublisherPort publishes activity events to a message bus.
// Publishing is best-effort: a failure must never affect the request that
// produced the activity.
type ActivityPublisherPort interface {
	PublishActivityCreated(ctx context.Context, event *ActivityEvent) error
}
