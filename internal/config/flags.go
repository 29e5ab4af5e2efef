package config

import (
	"flag"
	"fmt"
)

type cliFlags struct {
	configFile string
	values     Config
	set        map[string]bool
}

// parseFlags reads the command line. Only flags that were given override
// the other layers.
//
// Supported flags:
//
//	-c, -config string  YAML config file
//	-a string           listen port
//	-d string           PostgreSQL DSN
//	-s string           store driver (postgres or memory)
//	-l string           log level
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("rentals", flag.ContinueOnError)

	fs.StringVar(&f.configFile, "c", "", "path to YAML config file")
	fs.StringVar(&f.configFile, "config", "", "path to YAML config file")
	fs.StringVar(&f.values.Port, "a", "", "port to run server on")
	fs.StringVar(&f.values.DatabaseURL, "d", "", "database DSN")
	fs.StringVar(&f.values.StoreDriver, "s", "", "store driver: postgres or memory")
	fs.StringVar(&f.values.LogLevel, "l", "", "log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})

	return f, nil
}

func (f *cliFlags) apply(cfg *Config) {
	if f.set["a"] {
		cfg.Port = f.values.Port
	}
	if f.set["d"] {
		cfg.DatabaseURL = f.values.DatabaseURL
	}
	if f.set["s"] {
		cfg.StoreDriver = f.values.StoreDriver
	}
	if f.set["l"] {
		cfg.LogLevel = f.values.LogLevel
	}
}
