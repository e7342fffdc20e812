package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with NOTES_* variables. envFile, when it exists, is
// loaded first; variables already set in the process are not overridden.
func parseEnv(cfg *Config, envFile string) {
	_ = godotenv.Load(envFile)

	cfg.DataDir = getEnv("NOTES_DATA_DIR", cfg.DataDir)
	cfg.LogFile = getEnv("NOTES_LOG_FILE", cfg.LogFile)
	cfg.LogLevel = getEnv("NOTES_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("NOTES_LOG_FORMAT", cfg.LogFormat)

	if v, err := strconv.ParseBool(os.Getenv("NOTES_LOG_STDERR")); err == nil {
		cfg.LogToStderr = v
	}
	if v, err := strconv.Atoi(os.Getenv("NOTES_PREVIEW_LENGTH")); err == nil && v > 0 {
		cfg.PreviewLength = v
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
