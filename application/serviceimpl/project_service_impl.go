package serviceimpl

import (
	"context"
	"errors"
	"time"

	"kanban-api/domain/dto"
	"kanban-api/domain/models"
	"kanban-api/domain/repositories"
	"kanban-api/domain/services"
	"kanban-api/pkg/logger"
)

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	taskRepo    repositories.TaskRepository
	userRepo    repositories.UserRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) services.ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

// GetProject serves the whole board in one response. The singleton project
// row is created lazily the first time anyone fetches it.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			logger.ErrorContext(ctx, "Failed to fetch project", "project_id", id, "error", err)
			return nil, err
		}

		now := time.Now()
		project = &models.Project{
			ID:          models.DefaultProjectID,
			Name:        "Kanban Task Management",
			Description: "Kanban-style task management application",
			CreatedBy:   "1",
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := s.projectRepo.Create(ctx, project); err != nil {
			logger.ErrorContext(ctx, "Failed to create default project", "error", err)
			return nil, err
		}

		logger.InfoContext(ctx, "Default project created", "project_id", project.ID)
	}

	tasks, err := s.taskRepo.List(ctx, repositories.TaskFilter{})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load project tasks", "project_id", id, "error", err)
		return nil, err
	}

	members, err := s.userRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load project members", "project_id", id, "error", err)
		return nil, err
	}

	return dto.ProjectToProjectResponse(project, tasks, members), nil
}
