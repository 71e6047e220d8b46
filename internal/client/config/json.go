package config

import (
	"github.com/dmitrijs2005/artlog/internal/flagx"
	"github.com/spf13/viper"
)

const (
	keyServerURL      = "server_url"
	keyRequestTimeout = "request_timeout"
	keyJournalPath    = "journal_path"
	keyLogLevel       = "log_level"
	keyLogFormat      = "log_format"
)

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flag; without one nothing is
// loaded. Only keys present in the file override cfg. Durations are written
// as strings like "5s". Read or decode errors panic (caller should recover if
// desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	v := viper.New()
	v.SetConfigFile(jsonConfigFile)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		panic(err)
	}

	if v.IsSet(keyServerURL) {
		cfg.ServerURL = v.GetString(keyServerURL)
	}
	if v.IsSet(keyRequestTimeout) {
		cfg.RequestTimeout = v.GetDuration(keyRequestTimeout)
	}
	if v.IsSet(keyJournalPath) {
		cfg.JournalPath = v.GetString(keyJournalPath)
	}
	if v.IsSet(keyLogLevel) {
		cfg.LogLevel = v.GetString(keyLogLevel)
	}
	if v.IsSet(keyLogFormat) {
		cfg.LogFormat = v.GetString(keyLogFormat)
	}
}
