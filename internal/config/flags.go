package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/campusevents/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   path to the session storage file
//	-f string   path to a YAML seed fixture (empty: embedded seed)
//	-l string   log level (debug|info|warn|error)
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageFilePath, "s", cfg.StorageFilePath, "path to the session storage file")
	fs.StringVar(&cfg.SeedFilePath, "f", cfg.SeedFilePath, "path to a YAML seed fixture")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
