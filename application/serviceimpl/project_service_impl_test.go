package serviceimpl

import (
	"context"
	"testing"
	"time"

	"kanban-api/domain/models"
)

func TestGetProjectCreatesSingletonLazily(t *testing.T) {
	t.Parallel()
	projectRepo := newFakeProjectRepo()
	taskRepo := newFakeTaskRepo()
	userRepo := newFakeUserRepo()
	svc := NewProjectService(projectRepo, taskRepo, userRepo)

	resp, err := svc.GetProject(context.Background(), models.DefaultProjectID)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if resp.ID != models.DefaultProjectID {
		t.Errorf("project ID = %q, want %q", resp.ID, models.DefaultProjectID)
	}
	if resp.Name != "Kanban Task Management" {
		t.Errorf("project name = %q", resp.Name)
	}

	stored, err := projectRepo.GetByID(context.Background(), models.DefaultProjectID)
	if err != nil {
		t.Fatalf("singleton row not persisted: %v", err)
	}

	// A second fetch reuses the row instead of recreating it.
	again, err := svc.GetProject(context.Background(), models.DefaultProjectID)
	if err != nil {
		t.Fatalf("second GetProject: %v", err)
	}
	if !again.CreatedAt.Equal(stored.CreatedAt) {
		t.Error("second fetch rebuilt the singleton project")
	}
}

func TestGetProjectEmbedsBoardState(t *testing.T) {
	t.Parallel()
	projectRepo := newFakeProjectRepo()
	taskRepo := newFakeTaskRepo()
	userRepo := newFakeUserRepo()
	svc := NewProjectService(projectRepo, taskRepo, userRepo)

	now := time.Now()
	for _, task := range []models.Task{
		{ID: "t1", Title: "a", Status: models.StatusTodo, CreatedAt: now},
		{ID: "t2", Title: "b", Status: models.StatusDone, CreatedAt: now.Add(time.Second)},
	} {
		task := task
		if err := taskRepo.Create(context.Background(), &task); err != nil {
			t.Fatalf("seed task: %v", err)
		}
	}
	if err := userRepo.Create(context.Background(), &models.User{ID: "1", Name: "Alex Johnson", Email: "alex@example.com", Role: "admin"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	resp, err := svc.GetProject(context.Background(), models.DefaultProjectID)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if len(resp.Tasks) != 2 {
		t.Errorf("embedded %d tasks, want 2", len(resp.Tasks))
	}
	if len(resp.Members) != 1 {
		t.Errorf("embedded %d members, want 1", len(resp.Members))
	}
	if len(resp.Tasks) == 2 && resp.Tasks[0].ID != "t1" {
		t.Error("tasks not in creation order")
	}
}
