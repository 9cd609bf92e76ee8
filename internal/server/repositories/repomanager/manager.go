// Package repomanager wires the database connection to the repositories
// and runs migrations at startup.
package repomanager

import (
	"context"

	"github.com/taskhub/taskhub/internal/server/repositories/tasks"
	"github.com/taskhub/taskhub/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to the shared database
// connection.
type RepositoryManager interface {
	Users() users.Repository
	Tasks() tasks.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
