package serviceimpl

import (
	"context"
	"errors"
	"sort"
	"sync"

	"kanban-api/domain/models"
	"kanban-api/domain/repositories"
	"kanban-api/domain/services"
)

// In-memory repository fakes. Everything is cloned on the way in and out
// so tests cannot share state with the store by accident.

type fakeTaskRepo struct {
	mu    sync.RWMutex
	tasks map[string]models.Task
	order []string
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]models.Task)}
}

func cloneTask(t models.Task) models.Task {
	out := t
	if t.AssigneeID != nil {
		v := *t.AssigneeID
		out.AssigneeID = &v
	}
	if t.DueDate != nil {
		v := *t.DueDate
		out.DueDate = &v
	}
	out.Labels = append([]string(nil), t.Labels...)
	out.Comments = append([]models.Comment(nil), t.Comments...)
	return out
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = cloneTask(*task)
	r.order = append(r.order, task.ID)
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	out := cloneTask(task)
	return &out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return services.ErrNotFound
	}
	r.tasks[task.ID] = cloneTask(*task)
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	for i, tid := range r.order {
		if tid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeTaskRepo) List(_ context.Context, filter repositories.TaskFilter) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Task
	for _, id := range r.order {
		task := r.tasks[id]
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.AssigneeID != "" && (task.AssigneeID == nil || *task.AssigneeID != filter.AssigneeID) {
			continue
		}
		t := cloneTask(task)
		out = append(out, &t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

type fakeActivityRepo struct {
	mu         sync.RWMutex
	activities []models.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *fakeActivityRepo) ListRecent(_ context.Context, limit int) ([]*models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first; insertion order breaks timestamp ties.
	reversed := make([]models.Activity, 0, len(r.activities))
	for i := len(r.activities) - 1; i >= 0; i-- {
		reversed = append(reversed, r.activities[i])
	}
	sort.SliceStable(reversed, func(i, j int) bool {
		return reversed[i].CreatedAt.After(reversed[j].CreatedAt)
	})

	if limit < len(reversed) {
		reversed = reversed[:limit]
	}

	out := make([]*models.Activity, len(reversed))
	for i := range reversed {
		a := reversed[i]
		out[i] = &a
	}
	return out, nil
}

func (r *fakeActivityRepo) all() []models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Activity(nil), r.activities...)
}

// failingActivityRepo rejects every append, for exercising the
// best-effort dual-write path.
type failingActivityRepo struct{}

var errActivityStoreDown = errors.New("activity store down")

func (failingActivityRepo) Create(context.Context, *models.Activity) error {
	return errActivityStoreDown
}

func (failingActivityRepo) ListRecent(context.Context, int) ([]*models.Activity, error) {
	return nil, errActivityStoreDown
}

type fakeUserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
	order []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.users[id].Email == email {
			user := r.users[id]
			return &user, nil
		}
	}
	return nil, services.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		user := r.users[id]
		out = append(out, &user)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

type fakeProjectRepo struct {
	mu       sync.RWMutex
	projects map[string]models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]models.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ID] = *project
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	project, ok := r.projects[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &project, nil
}
