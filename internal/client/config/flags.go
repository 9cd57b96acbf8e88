package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/foodcourt/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   base URL of the backend document service
//	-p string   project id
//	-k string   API key
//	-d string   database id
//	-t int      request timeout in seconds (default from Config)
//	-debug      verbose logging and development commands
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-p", "-k", "-d", "-t", "-debug"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Endpoint, "e", cfg.Endpoint, "base URL of the backend document service")
	fs.StringVar(&cfg.ProjectID, "p", cfg.ProjectID, "project id")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key")
	fs.StringVar(&cfg.DatabaseID, "d", cfg.DatabaseID, "database id")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose logging and development commands")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
