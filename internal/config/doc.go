// Package config loads runtime configuration for the notes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and the process environment.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Environment
//
//	NOTES_DATA_DIR        directory holding users.json, notes.json, counters.json
//	NOTES_LOG_FILE        path of the rotating log file
//	NOTES_LOG_LEVEL       debug, info, warn or error
//	NOTES_LOG_FORMAT      text or json
//	NOTES_LOG_STDERR      also log to stderr (true/false)
//	NOTES_PREVIEW_LENGTH  characters of content shown in note lists
//
// Values that do not parse are ignored.
//
// Flags
//
//	-d string   data directory
//	-l string   log file
//	-v string   log level
//	-f string   log format
//	-p int      preview length
//
// # JSON schema
//
//	{
//	  "data_dir": "data",
//	  "log_file": "debug.log",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "log_to_stderr": false,
//	  "log_max_size_mb": 10,
//	  "log_max_backups": 3,
//	  "preview_length": 40
//	}
//
// Keys missing from the file keep their previous value. Unreadable JSON and
// malformed flags panic.
package config
