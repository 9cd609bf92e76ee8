// Package users persists credential records.
package users

import (
	"context"

	"github.com/taskhub/taskhub/internal/server/models"
)

// Repository is the credential store consumed by the authentication
// service.
type Repository interface {
	// Create persists a new user and returns it with the server-assigned
	// ID. A duplicate email yields common.ErrorConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users, public fields only ordered by name.
	List(ctx context.Context) ([]*models.User, error)
}
