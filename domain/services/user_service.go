package services

import (
	"context"

	"kanban-api/domain/dto"
	"kanban-api/domain/models"
)

type UserService interface {
	// Login finds a user by email, creating a member account on the fly if
	// none exists. No credential is ever verified.
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}
