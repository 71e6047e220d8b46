package config

import "time"

// Config holds runtime settings for the ArtLog CLI.
//
// Fields:
//   - ServerURL: base URL of the record-keeping service.
//   - RequestTimeout: upper bound for one service call; 0 disables it.
//   - JournalPath: SQLite file of the mutation journal; "" disables the journal.
//   - LogLevel, LogFormat: see logging.New.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	JournalPath    string
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.JournalPath = "artlog.db"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
