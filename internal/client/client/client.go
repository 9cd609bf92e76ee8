// Package client implements the typed API client for the Task Hub
// backend. Every failure is one of the fixed kinds in errors.go.
package client

import (
	"context"

	"github.com/taskhub/taskhub/internal/client/models"
)

type Client interface {
	// Register creates a new account and returns its public identity.
	Register(ctx context.Context, name, email, password string) (*models.User, error)

	// Login verifies credentials and returns the identity plus a session
	// token.
	Login(ctx context.Context, email, password string) (*models.User, string, error)

	// ListTasks returns all tasks. Requires a valid session token.
	ListTasks(ctx context.Context, token string) ([]*models.Task, error)

	// CreateTask creates a task. Requires a valid session token.
	CreateTask(ctx context.Context, token string, task *models.Task) (*models.Task, error)

	// Ping checks server liveness.
	Ping(ctx context.Context) error
}
