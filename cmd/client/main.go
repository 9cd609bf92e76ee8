package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/taskhub/taskhub/internal/client/cli"
	"github.com/taskhub/taskhub/internal/client/client"
	"github.com/taskhub/taskhub/internal/client/config"
	"github.com/taskhub/taskhub/internal/client/session"
)

func main() {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()

	stateDir := cfg.StateDir
	if stateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			log.Fatalf("%v", err)
		}
		stateDir = filepath.Join(base, "taskhub")
	}

	store, err := session.NewFileStore(stateDir)
	if err != nil {
		log.Fatalf("%v", err)
	}

	api := client.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout)
	sess := session.NewManager(api, store)
	if err := sess.Restore(); err != nil {
		log.Fatalf("%v", err)
	}

	app := cli.NewApp(api, sess, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("%v", err)
	}

}
