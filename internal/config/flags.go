package config

import (
	"flag"
	"os"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-f string   member data file (default from Config)
//	-l string   log level (default from Config)
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], "-f", "-l")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "path of the member data file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
