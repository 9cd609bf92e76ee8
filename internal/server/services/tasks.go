package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/server/models"
	"github.com/taskhub/taskhub/internal/server/repositories/tasks"
)

// TaskService provides CRUD over tasks.
type TaskService struct {
	repo tasks.Repository
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context) ([]*models.Task, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return result, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error getting task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.UserID == "" || task.Title == "" || task.Description == "" {
		return nil, common.ErrorValidation
	}
	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return created, nil
}

func (s *TaskService) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.ID == "" {
		return nil, common.ErrorValidation
	}
	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating task: %w", err)
	}
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting task: %w", err)
	}
	return nil
}
