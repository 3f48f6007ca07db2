package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kanban-api/domain/models"
	"kanban-api/pkg/logger"
)

// SeedUsers populates the demo accounts on first boot. Runs only when the
// users table is empty, so existing installs are never touched.
func SeedUsers(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	users := []models.User{
		{ID: "1", Name: "Alex Johnson", Email: "alex@example.com", Avatar: "https://i.pravatar.cc/150?img=1", Role: "admin", CreatedAt: now, UpdatedAt: now},
		{ID: "2", Name: "Sarah Miller", Email: "sarah@example.com", Avatar: "https://i.pravatar.cc/150?img=2", Role: "manager", CreatedAt: now, UpdatedAt: now},
		{ID: "3", Name: "David Kim", Email: "david@example.com", Avatar: "https://i.pravatar.cc/150?img=3", Role: "member", CreatedAt: now, UpdatedAt: now},
		{ID: "4", Name: "Emily Chen", Email: "emily@example.com", Avatar: "https://i.pravatar.cc/150?img=4", Role: "member", CreatedAt: now, UpdatedAt: now},
	}

	if err := db.WithContext(ctx).Create(&users).Error; err != nil {
		return err
	}

	logger.Info("Seed users created", "count", len(users))
	return nil
}
