package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/timediary/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-l int      number of diaries shown by list commands (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.IntVar(&cfg.ListLimit, "l", cfg.ListLimit, "number of diaries shown by list commands")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
