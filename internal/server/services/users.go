// Package services contains server-side business logic. This file
// implements UserService: registration, credential verification, and
// session token issuance.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/cryptox"
	"github.com/taskhub/taskhub/internal/server/auth"
	"github.com/taskhub/taskhub/internal/server/config"
	"github.com/taskhub/taskhub/internal/server/models"
	"github.com/taskhub/taskhub/internal/server/repositories/users"
)

// dummyHash is a valid bcrypt hash compared against when the email is
// unknown, so a login probe costs the same whether or not the account
// exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint a session token
// - List: enumerate public identities
type UserService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService from the users repository and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user. A taken email yields common.ErrorConflict;
// the existence pre-check is only a fast path that skips the hash work,
// the storage-layer unique index remains the real guard.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorConflict
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := cryptox.HashPassword([]byte(password))
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			// Lost the race with a concurrent registration.
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// Login verifies the credentials and returns a signed session token plus
// the public identity. Unknown email and wrong password are
// indistinguishable: both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = normalizeEmail(email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn the same hashing cost as the found path.
			_, _ = cryptox.CheckPassword(dummyHash, []byte(password))
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	ok, err := cryptox.CheckPassword(user.PasswordHash, []byte(password))
	if err != nil {
		return "", nil, common.ErrorInternal
	}
	if !ok {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

// List returns the public identities of all users.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return result, nil
}
