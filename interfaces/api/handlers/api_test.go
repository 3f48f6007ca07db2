package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"

	"kanban-api/application/serviceimpl"
	"kanban-api/domain/models"
	"kanban-api/domain/repositories"
	"kanban-api/domain/services"
	"kanban-api/interfaces/api/handlers"
	"kanban-api/interfaces/api/routes"
)

// In-memory repositories behind a real fiber app, so requests run through
// body parsing, validation and the response envelope.

type memTaskRepo struct {
	tasks map[string]*models.Task
	order []string
}

func (r *memTaskRepo) Create(_ context.Context, task *models.Task) error {
	t := *task
	r.tasks[task.ID] = &t
	r.order = append(r.order, task.ID)
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id string) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	t := *task
	return &t, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return services.ErrNotFound
	}
	t := *task
	r.tasks[task.ID] = &t
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id string) error {
	delete(r.tasks, id)
	for i, tid := range r.order {
		if tid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memTaskRepo) List(_ context.Context, filter repositories.TaskFilter) ([]*models.Task, error) {
	var out []*models.Task
	for _, id := range r.order {
		task := r.tasks[id]
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.AssigneeID != "" && (task.AssigneeID == nil || *task.AssigneeID != filter.AssigneeID) {
			continue
		}
		t := *task
		out = append(out, &t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

type memActivityRepo struct {
	activities []models.Activity
}

func (r *memActivityRepo) Create(_ context.Context, activity *models.Activity) error {
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *memActivityRepo) ListRecent(_ context.Context, limit int) ([]*models.Activity, error) {
	var out []*models.Activity
	for i := len(r.activities) - 1; i >= 0 && len(out) < limit; i-- {
		a := r.activities[i]
		out = append(out, &a)
	}
	return out, nil
}

type memUserRepo struct {
	users map[string]*models.User
	order []string
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	u := *user
	r.users[user.ID] = &u
	r.order = append(r.order, user.ID)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	u := *user
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, id := range r.order {
		if r.users[id].Email == email {
			u := *r.users[id]
			return &u, nil
		}
	}
	return nil, services.ErrNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		u := *r.users[id]
		out = append(out, &u)
	}
	return out, nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type memProjectRepo struct {
	projects map[string]*models.Project
}

func (r *memProjectRepo) Create(_ context.Context, project *models.Project) error {
	p := *project
	r.projects[project.ID] = &p
	return nil
}

func (r *memProjectRepo) GetByID(_ context.Context, id string) (*models.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	p := *project
	return &p, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	taskRepo := &memTaskRepo{tasks: make(map[string]*models.Task)}
	activityRepo := &memActivityRepo{}
	userRepo := &memUserRepo{users: make(map[string]*models.User)}
	projectRepo := &memProjectRepo{projects: make(map[string]*models.Project)}

	activityService := serviceimpl.NewActivityService(activityRepo, nil)

	svcs := &handlers.Services{
		UserService:     serviceimpl.NewUserService(userRepo, "test-secret"),
		TaskService:     serviceimpl.NewTaskService(taskRepo, activityService),
		ActivityService: activityService,
		ProjectService:  serviceimpl.NewProjectService(projectRepo, taskRepo, userRepo),
	}

	app := fiber.New()
	routes.SetupRoutes(app, handlers.NewHandlers(svcs))
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, target, err)
	}
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/health", nil)
	if status != http.StatusOK {
		t.Fatalf("GET /health status = %d, want 200", status)
	}
}
