package postgres

import (
	"context"

	"gorm.io/gorm"

	"kanban-api/domain/models"
	"kanban-api/domain/repositories"
)

type ActivityRepositoryImpl struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) repositories.ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *ActivityRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*models.Activity, error) {
	var activities []*models.Activity
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&activities).Error
	return activities, err
}
