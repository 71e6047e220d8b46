// Package config loads runtime configuration for the ArtLog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     base URL of the record-keeping service
//	-t duration   request timeout (e.g. 5s)
//	-j string     mutation journal file ("" disables the journal)
//	-l string     log level
//
// # JSON schema
//
// The file is decoded with viper. Durations are strings like "5s":
//
//	{
//	  "server_url": "http://127.0.0.1:8000",
//	  "request_timeout": "5s",
//	  "journal_path": "artlog.db",
//	  "log_level": "info",
//	  "log_format": "json"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
