package config

import (
	"flag"
	"fmt"

	"github.com/JoseBG93/notes-Assistant/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// args is filtered through flagx.FilterArgs first so -c/-config and flags
// owned elsewhere do not break parsing. Malformed values panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-v", "-f", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory holding the JSON data files")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text or json")
	fs.IntVar(&cfg.PreviewLength, "p", cfg.PreviewLength, "content preview length in note lists")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if cfg.PreviewLength <= 0 {
		panic(fmt.Sprintf("preview length must be positive, got %d", cfg.PreviewLength))
	}
}
