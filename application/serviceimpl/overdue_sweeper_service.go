package serviceimpl

import (
	"context"
	"time"

	"kanban-api/domain/models"
	"kanban-api/domain/repositories"
	"kanban-api/pkg/logger"
	"kanban-api/pkg/scheduler"
)

const overdueSweepJobID = "overdue-task-sweep"

type OverdueSweeperConfig struct {
	Cron string // e.g. "0 8 * * *" for a morning report
}

// OverdueSweeperService periodically reports tasks past their due date.
// Read-only: it records no activities and mutates nothing.
type OverdueSweeperService struct {
	config         OverdueSweeperConfig
	taskRepo       repositories.TaskRepository
	eventScheduler scheduler.EventScheduler
}

func NewOverdueSweeperService(config OverdueSweeperConfig, taskRepo repositories.TaskRepository, eventScheduler scheduler.EventScheduler) *OverdueSweeperService {
	return &OverdueSweeperService{
		config:         config,
		taskRepo:       taskRepo,
		eventScheduler: eventScheduler,
	}
}

func (s *OverdueSweeperService) RegisterSweepJob() error {
	return s.eventScheduler.AddJob(overdueSweepJobID, s.config.Cron, s.sweep)
}

func (s *OverdueSweeperService) sweep() {
	ctx := context.Background()

	tasks, err := s.taskRepo.List(ctx, repositories.TaskFilter{})
	if err != nil {
		logger.Error("Overdue sweep failed to list tasks", "error", err)
		return
	}

	now := time.Now()
	overdue := 0
	for _, task := range tasks {
		if task.Status == models.StatusDone || task.DueDate == nil {
			continue
		}
		if task.DueDate.Before(now) {
			overdue++
		}
	}

	if overdue > 0 {
		logger.Warn("Overdue tasks on the board", "count", overdue, "total", len(tasks))
	} else {
		logger.Debug("No overdue tasks", "total", len(tasks))
	}
}
