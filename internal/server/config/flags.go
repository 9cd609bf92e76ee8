package config

import (
	"flag"
	"os"
	"time"

	"github.com/taskhub/taskhub/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   PostgreSQL DSN
//	-t int      session token validity, minutes
//
// The secret key deliberately has no flag: secrets do not belong in argv.
// Args are filtered with flagx.FilterArgs so this parser coexists with the
// -c/-config flags handled by the JSON layer.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity duration (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
