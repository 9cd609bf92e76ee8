// Package tasks persists task records.
package tasks

import (
	"context"

	"github.com/taskhub/taskhub/internal/server/models"
)

type Repository interface {
	// List returns all tasks, newest first.
	List(ctx context.Context) ([]*models.Task, error)

	// Get returns the task with the given ID or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Task, error)

	// Create persists a new task and returns it with the server-assigned
	// ID and timestamps.
	Create(ctx context.Context, task *models.Task) (*models.Task, error)

	// Update overwrites the task's mutable fields. Returns
	// common.ErrorNotFound when no such task exists.
	Update(ctx context.Context, task *models.Task) (*models.Task, error)

	// Delete removes the task. Returns common.ErrorNotFound when no such
	// task exists.
	Delete(ctx context.Context, id string) error
}
