package services

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/server/models"
)

type fakeTasksRepo struct {
	byID map[string]*models.Task
	next int
}

func newFakeTasksRepo() *fakeTasksRepo {
	return &fakeTasksRepo{byID: make(map[string]*models.Task)}
}

func (f *fakeTasksRepo) List(ctx context.Context) ([]*models.Task, error) {
	var result []*models.Task
	for _, t := range f.byID {
		result = append(result, t)
	}
	return result, nil
}

func (f *fakeTasksRepo) Get(ctx context.Context, id string) (*models.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	f.next++
	stored := *task
	stored.ID = "task-1"
	f.byID[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	if _, ok := f.byID[task.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	stored := *task
	f.byID[task.ID] = &stored
	return &stored, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestTaskService_CreateAndGet(t *testing.T) {
	svc := NewTaskService(newFakeTasksRepo())

	created, err := svc.Create(context.Background(), &models.Task{
		UserID: "user-1", Title: "Estudar Go", Description: "ler o tour",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected server-assigned ID")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Title != "Estudar Go" {
		t.Fatalf("title mismatch: %q", got.Title)
	}
}

func TestTaskService_CreateValidation(t *testing.T) {
	svc := NewTaskService(newFakeTasksRepo())

	_, err := svc.Create(context.Background(), &models.Task{UserID: "user-1"})
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected ErrorValidation, got %v", err)
	}
}

func TestTaskService_GetMissing(t *testing.T) {
	svc := NewTaskService(newFakeTasksRepo())

	_, err := svc.Get(context.Background(), "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestTaskService_UpdateAndDelete(t *testing.T) {
	repo := newFakeTasksRepo()
	svc := NewTaskService(repo)

	created, err := svc.Create(context.Background(), &models.Task{
		UserID: "user-1", Title: "a", Description: "b",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	created.Done = true
	updated, err := svc.Update(context.Background(), created)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !updated.Done {
		t.Fatalf("expected done=true")
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound on second delete, got %v", err)
	}
}

func TestTaskService_UpdateMissing(t *testing.T) {
	svc := NewTaskService(newFakeTasksRepo())

	_, err := svc.Update(context.Background(), &models.Task{
		ID: "nope", UserID: "user-1", Title: "a", Description: "b",
	})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
