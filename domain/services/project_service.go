package services

import (
	"context"

	"kanban-api/domain/dto"
)

type ProjectService interface {
	// GetProject returns the board with tasks and members embedded. The
	// singleton project row is created on first fetch if absent.
	GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error)
}
