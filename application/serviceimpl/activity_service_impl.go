package serviceimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kanban-api/domain/models"
	"kanban-api/domain/ports"
	"kanban-api/domain/repositories"
	"kanban-api/domain/services"
	redispkg "kanban-api/infrastructure/redis"
	"kanban-api/pkg/logger"
)

const (
	activityCacheKeyPrefix = "activities:recent:"
	activityCacheTTL       = 30 * time.Second
)

type ActivityServiceImpl struct {
	activityRepo repositories.ActivityRepository
	publisher    ports.ActivityPublisherPort // nil when NATS is not configured
	cache        *redispkg.Client            // nil when Redis is not configured
}

func NewActivityService(activityRepo repositories.ActivityRepository, publisher ports.ActivityPublisherPort) services.ActivityService {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
		publisher:    publisher,
	}
}

func NewActivityServiceWithCache(activityRepo repositories.ActivityRepository, publisher ports.ActivityPublisherPort, cache *redispkg.Client) services.ActivityService {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
		publisher:    publisher,
		cache:        cache,
	}
}

func (s *ActivityServiceImpl) Record(ctx context.Context, userID, action string, taskID, projectID *string) (*models.Activity, error) {
	if strings.TrimSpace(action) == "" {
		return nil, fmt.Errorf("%w: action is required", services.ErrInvalidInput)
	}

	activity := &models.Activity{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		TaskID:    taskID,
		ProjectID: projectID,
		CreatedAt: time.Now(),
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		logger.ErrorContext(ctx, "Failed to record activity", "action", action, "error", err)
		return nil, err
	}

	s.invalidateFeedCache(ctx)
	s.publishEvent(ctx, activity)

	return activity, nil
}

func (s *ActivityServiceImpl) ListRecent(ctx context.Context, limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = services.DefaultActivityLimit
	}

	cacheKey := fmt.Sprintf("%s%d", activityCacheKeyPrefix, limit)

	if s.cache != nil {
		var cached []*models.Activity
		err := s.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !redispkg.IsCacheMiss(err) {
			logger.WarnContext(ctx, "Activity feed cache read failed", "error", err)
		}
	}

	activities, err := s.activityRepo.ListRecent(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list activities", "limit", limit, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, activities, activityCacheTTL); err != nil {
			logger.WarnContext(ctx, "Activity feed cache write failed", "error", err)
		}
	}

	return activities, nil
}

// invalidateFeedCache drops every cached feed size after an append so the
// next read sees the new entry.
func (s *ActivityServiceImpl) invalidateFeedCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.ScanAndDelete(ctx, activityCacheKeyPrefix+"*"); err != nil {
		logger.WarnContext(ctx, "Activity feed cache invalidation failed", "error", err)
	}
}

// publishEvent fans the activity out to NATS. Fire-and-forget: the Postgres
// row is the source of truth and a publish failure only gets logged.
func (s *ActivityServiceImpl) publishEvent(ctx context.Context, activity *models.Activity) {
	if s.publisher == nil {
		return
	}

	event := &ports.ActivityEvent{
		ID:        activity.ID,
		UserID:    activity.UserID,
		Action:    activity.Action,
		TaskID:    activity.TaskID,
		ProjectID: activity.ProjectID,
		CreatedAt: activity.CreatedAt.Format(time.RFC3339Nano),
	}

	if err := s.publisher.PublishActivityCreated(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish activity event", "activity_id", activity.ID, "error", err)
	}
}
