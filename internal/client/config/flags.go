package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/marketcart/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path/DSN of the local database (default from Config)
//	-l int      simulated auth latency in milliseconds (default from Config)
//	-s string   session signing secret (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database")
	fs.StringVar(&cfg.SessionSecret, "s", cfg.SessionSecret, "session signing secret")
	authDelay := fs.Int("l", int(cfg.AuthDelay.Milliseconds()), "simulated auth latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthDelay = time.Duration(*authDelay) * time.Millisecond
}
