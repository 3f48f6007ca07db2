package di

import (
	"context"

	"gorm.io/gorm"

	"kanban-api/application/serviceimpl"
	"kanban-api/domain/ports"
	"kanban-api/domain/repositories"
	"kanban-api/domain/services"
	"kanban-api/infrastructure/messaging"
	natspkg "kanban-api/infrastructure/nats"
	"kanban-api/infrastructure/postgres"
	redispkg "kanban-api/infrastructure/redis"
	"kanban-api/interfaces/api/handlers"
	"kanban-api/pkg/config"
	"kanban-api/pkg/logger"
	"kanban-api/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // optional feed cache
	NATSClient     *natspkg.Client  // optional event fan-out
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository     repositories.UserRepository
	TaskRepository     repositories.TaskRepository
	ActivityRepository repositories.ActivityRepository
	ProjectRepository  repositories.ProjectRepository

	// Ports
	ActivityPublisher ports.ActivityPublisherPort

	// Services
	UserService     services.UserService
	TaskService     services.TaskService
	ActivityService services.ActivityService
	ProjectService  services.ProjectService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initSweeper(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized", "level", c.Config.Log.Level, "format", c.Config.Log.Format)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:           c.Config.Database.Host,
		Port:           c.Config.Database.Port,
		User:           c.Config.Database.User,
		Password:       c.Config.Database.Password,
		DBName:         c.Config.Database.DBName,
		SSLMode:        c.Config.Database.SSLMode,
		ConnectRetries: c.Config.Database.ConnectRetries,
		RetryDelay:     c.Config.Database.RetryDelay,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	if err := postgres.SeedUsers(context.Background(), db); err != nil {
		return err
	}

	// Redis is optional: run without a feed cache when unreachable.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (feed cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
		}
	}

	// NATS is optional: run without event fan-out when unreachable.
	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS client initialization failed (event fan-out disabled)", "error", err)
		} else {
			c.NATSClient = natsClient
			c.ActivityPublisher = messaging.NewNATSActivityPublisher(natsClient.Conn())
		}
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.ActivityRepository = postgres.NewActivityRepository(c.DB)
	c.ProjectRepository = postgres.NewProjectRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	if c.RedisClient != nil {
		c.ActivityService = serviceimpl.NewActivityServiceWithCache(c.ActivityRepository, c.ActivityPublisher, c.RedisClient)
		logger.Info("Activity service initialized with Redis cache")
	} else {
		c.ActivityService = serviceimpl.NewActivityService(c.ActivityRepository, c.ActivityPublisher)
		logger.Info("Activity service initialized without cache")
	}

	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.ActivityService)
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.ProjectService = serviceimpl.NewProjectService(c.ProjectRepository, c.TaskRepository, c.UserRepository)

	logger.Info("Services initialized")
	return nil
}

func (c *Container) initSweeper() error {
	if !c.Config.Sweeper.Enabled {
		logger.Info("Overdue sweeper disabled")
		return nil
	}

	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()

	sweeper := serviceimpl.NewOverdueSweeperService(
		serviceimpl.OverdueSweeperConfig{Cron: c.Config.Sweeper.Cron},
		c.TaskRepository,
		c.EventScheduler,
	)

	if err := sweeper.RegisterSweepJob(); err != nil {
		logger.Warn("Failed to register overdue sweep job", "error", err)
	}

	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		} else {
			logger.Info("NATS connection closed")
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:     c.UserService,
		TaskService:     c.TaskService,
		ActivityService: c.ActivityService,
		ProjectService:  c.ProjectService,
	}
}
