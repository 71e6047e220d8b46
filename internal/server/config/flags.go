package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/artlog/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-l string   log level
//	-f string   log format (text or json)
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
