package config

import (
	"github.com/dmitrijs2005/artlog/internal/flagx"
	"github.com/spf13/viper"
)

// parseJson loads values from the JSON file named by -c or -config. Only keys
// present in the file are applied. The function panics if the file cannot be
// read or decoded.
func parseJson(config *Config) {
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

	for key, dst := range map[string]*string{
		"endpoint_addr": &config.EndpointAddr,
		"log_level":     &config.LogLevel,
		"log_format":    &config.LogFormat,
	} {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
}
