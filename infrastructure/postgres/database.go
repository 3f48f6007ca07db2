package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kanban-api/domain/models"
	"kanban-api/pkg/logger"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// Startup-only retry. Defaults: 5 attempts, 3s apart.
	ConnectRetries int
	RetryDelay     time.Duration
}

// NewDatabase opens the connection with a bounded retry loop. There are no
// per-request retries anywhere else.
func NewDatabase(config DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode)

	attempts := config.ConnectRetries
	if attempts < 1 {
		attempts = 1
	}
	delay := config.RetryDelay
	if delay <= 0 {
		delay = 3 * time.Second
	}

	var db *gorm.DB
	var err error
	for i := 0; i < attempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			return db, nil
		}
		if i < attempts-1 {
			logger.Warn("Database connection failed, retrying",
				"attempts_left", attempts-i-1,
				"delay", delay.String(),
				"error", err,
			)
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Activity{},
		&models.Project{},
	)
}
