// Package server initializes and runs the backend: it loads configuration,
// connects storage, wires the services, and starts the HTTP server with
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/taskhub/taskhub/internal/logging"
	"github.com/taskhub/taskhub/internal/server/config"
	"github.com/taskhub/taskhub/internal/server/repositories/repomanager"
	"github.com/taskhub/taskhub/internal/server/rest"
	"github.com/taskhub/taskhub/internal/server/services"
)

// ErrNoSecretKey means TASKHUB_SECRET_KEY was not provided. The signing
// secret is never hardcoded and never optional.
var ErrNoSecretKey = errors.New("no secret key configured, set " + config.EnvSecretKey)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       *repomanager.PostgresRepositoryManager
	userService *services.UserService
	taskService *services.TaskService
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	if cfg.SecretKey == "" {
		return nil, ErrNoSecretKey
	}

	repos, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(repos.Users(), cfg)
	ts := services.NewTaskService(repos.Tasks())

	return &App{
		config:      cfg,
		logger:      logger,
		repos:       repos,
		userService: us,
		taskService: ts,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	s := rest.NewServer(app.config.EndpointAddr, app.logger,
		app.userService, app.taskService, app.config.SecretKey)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
