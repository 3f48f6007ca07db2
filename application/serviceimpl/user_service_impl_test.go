package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"kanban-api/domain/dto"
	"kanban-api/domain/services"
)

const testJWTSecret = "test-secret"

func TestLoginCreatesMemberForUnknownEmail(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTSecret)

	token, user, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "grace@example.com",
		Password: "ignored",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
	if user.Name != "grace" {
		t.Errorf("name = %q, want local part of email", user.Name)
	}
	if user.Role != "member" {
		t.Errorf("role = %q, want member", user.Role)
	}
	if !strings.Contains(user.Avatar, "dicebear") {
		t.Errorf("avatar = %q, want a generated dicebear URL", user.Avatar)
	}

	count, _ := repo.Count(context.Background())
	if count != 1 {
		t.Errorf("stored %d users, want 1", count)
	}
}

func TestLoginReusesExistingUser(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTSecret)

	_, first, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "grace@example.com"})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}

	// A different password still resolves to the same account.
	_, second, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "grace@example.com", Password: "anything"})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second login created a new user: %q vs %q", second.ID, first.ID)
	}

	count, _ := repo.Count(context.Background())
	if count != 1 {
		t.Errorf("stored %d users, want 1", count)
	}
}

func TestLoginRejectsEmptyEmail(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo(), testJWTSecret)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "   "})
	if !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo(), testJWTSecret)

	_, err := svc.GetUser(context.Background(), "missing")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
