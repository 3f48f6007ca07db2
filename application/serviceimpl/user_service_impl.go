package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kanban-api/domain/dto"
	"kanban-api/domain/models"
	"kanban-api/domain/repositories"
	"kanban-api/domain/services"
	"kanban-api/pkg/logger"
	"kanban-api/pkg/utils"
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Login is a capability-free identity lookup: the password field is never
// inspected, and an unknown email gets a fresh member account.
func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return "", nil, fmt.Errorf("%w: email is required", services.ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			logger.ErrorContext(ctx, "Login lookup failed", "email", email, "error", err)
			return "", nil, err
		}

		now := time.Now()
		user = &models.User{
			ID:        uuid.NewString(),
			Name:      strings.SplitN(email, "@", 2)[0],
			Email:     email,
			Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email,
			Role:      "member",
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := s.userRepo.Create(ctx, user); err != nil {
			logger.ErrorContext(ctx, "Failed to create user at login", "email", email, "error", err)
			return "", nil, err
		}

		logger.InfoContext(ctx, "User created at login", "user_id", user.ID, "email", email)
	}

	token, err := utils.GenerateIdentityToken(user, s.jwtSecret)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign identity token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	return token, user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}
