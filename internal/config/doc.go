// Package config loads runtime configuration for the gym console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   path of the member data file
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "data_file": "gym_members.txt",
//	  "log_level": "info"
//	}
//
// Running with no flags at all reproduces the classic behaviour: members are
// kept in gym_members.txt in the working directory.
package config
