package config

import (
	"encoding/json"
	"os"

	"github.com/JoseBG93/notes-Assistant/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell an absent key apart from a zero value.
type JsonConfig struct {
	DataDir       *string `json:"data_dir"`
	LogFile       *string `json:"log_file"`
	LogLevel      *string `json:"log_level"`
	LogFormat     *string `json:"log_format"`
	LogToStderr   *bool   `json:"log_to_stderr"`
	LogMaxSizeMB  *int    `json:"log_max_size_mb"`
	LogMaxBackups *int    `json:"log_max_backups"`
	PreviewLength *int    `json:"preview_length"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag nothing changes. Read or unmarshal errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.DataDir, jc.DataDir)
	setIf(&cfg.LogFile, jc.LogFile)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.LogToStderr, jc.LogToStderr)
	setIf(&cfg.LogMaxSizeMB, jc.LogMaxSizeMB)
	setIf(&cfg.LogMaxBackups, jc.LogMaxBackups)
	setIf(&cfg.PreviewLength, jc.PreviewLength)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
