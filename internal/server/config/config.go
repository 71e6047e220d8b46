// Package config handles configuration for the development service,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the development service.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP endpoint.
//   - LogLevel, LogFormat: see logging.New.
type Config struct {
	EndpointAddr string
	LogLevel     string
	LogFormat    string
}

// LoadDefaults populates Config with development defaults. The address
// matches the client's default server URL.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = "127.0.0.1:8000"
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
