package config

import (
	"flag"
	"os"
	"strings"
)

// filterArgs keeps only the flags named in allowed, together with their
// values, so that each parser in this package can run over os.Args without
// tripping on flags that belong to another one. Both "-f value" and
// "-f=value" forms are recognized.
func filterArgs(args []string, allowed ...string) []string {
	known := func(name string) bool {
		for _, a := range allowed {
			if a == name {
				return true
			}
		}
		return false
	}

	out := []string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if known(name) {
				out = append(out, arg)
			}
			continue
		}

		if !known(arg) {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// configFilePath returns the value of -c / -config, or "" when neither is set.
func configFilePath() string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(filterArgs(os.Args[1:], "-c", "-config", "--config"))

	return path
}
