// Package rest exposes the Task Hub HTTP API: public registration and
// login routes plus token-gated users and tasks routes.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/taskhub/taskhub/internal/logging"
	"github.com/taskhub/taskhub/internal/server/models"
)

// UserService is the slice of the authentication service the transport
// needs.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

// TaskService is the slice of the task service the transport needs.
type TaskService interface {
	List(ctx context.Context) ([]*models.Task, error)
	Get(ctx context.Context, id string) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, id string) error
}

type Server struct {
	addr      string
	logger    logging.Logger
	users     UserService
	tasks     TaskService
	jwtSecret []byte
}

func NewServer(addr string, logger logging.Logger, users UserService, tasks TaskService, secretKey string) *Server {
	return &Server{
		addr:      addr,
		logger:    logger,
		users:     users,
		tasks:     tasks,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the route table. /auth/* is public; /users and /tasks
// sit behind the authorization middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Task Hub Backend"))
	})

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	mux.Handle("GET /users", s.authorize(http.HandlerFunc(s.handleListUsers)))

	mux.Handle("GET /tasks", s.authorize(http.HandlerFunc(s.handleListTasks)))
	mux.Handle("POST /tasks", s.authorize(http.HandlerFunc(s.handleCreateTask)))
	mux.Handle("GET /tasks/{id}", s.authorize(http.HandlerFunc(s.handleGetTask)))
	mux.Handle("PUT /tasks/{id}", s.authorize(http.HandlerFunc(s.handleUpdateTask)))
	mux.Handle("DELETE /tasks/{id}", s.authorize(http.HandlerFunc(s.handleDeleteTask)))

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "http server started", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info(ctx, "shutting down http server")
	return srv.Shutdown(shutdownCtx)
}
