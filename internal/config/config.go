package config

import "os"

// Config holds runtime settings for the notes CLI.
//
// LogMaxSizeMB is the size in megabytes at which the log file is rotated.
type Config struct {
	DataDir       string
	LogFile       string
	LogLevel      string
	LogFormat     string
	LogToStderr   bool
	LogMaxSizeMB  int
	LogMaxBackups int
	PreviewLength int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.LogFile = "debug.log"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.LogToStderr = false
	c.LogMaxSizeMB = 10
	c.LogMaxBackups = 3
	c.PreviewLength = 40
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
