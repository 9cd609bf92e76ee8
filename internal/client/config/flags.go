package config

import (
	"flag"
	"os"

	"github.com/taskhub/taskhub/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   server base URL (e.g., "http://localhost:3000")
//	-D string   state directory for the persisted session
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-D"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "s", config.ServerBaseURL, "server base URL")
	fs.StringVar(&config.StateDir, "D", config.StateDir, "state directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
