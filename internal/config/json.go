package config

import (
	"encoding/json"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the current Config value untouched.
type JsonConfig struct {
	DataFile string `json:"data_file"`
	LogLevel string `json:"log_level"`
}

// parseJson overlays cfg with values from the file named by -c / -config.
// Without such a flag it does nothing. Read or decode errors panic: the
// program cannot start with a config file it was told to use but cannot read.
func parseJson(cfg *Config) {
	path := configFilePath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataFile != "" {
		cfg.DataFile = jc.DataFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
