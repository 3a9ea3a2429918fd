package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "both flags", args: []string{"gym", "-f", "/tmp/m.txt", "-l", "debug"},
			expected: &Config{DataFile: "/tmp/m.txt", LogLevel: "debug"}},
		{name: "equals form, foreign flags ignored", args: []string{"gym", "-c", "x.json", "-f=data.txt"},
			expected: &Config{DataFile: "data.txt", LogLevel: "info"}},
		{name: "no flags keeps defaults", args: []string{"gym"},
			expected: &Config{DataFile: "gym_members.txt", LogLevel: "info"}},
		{name: "flag without value", args: []string{"gym", "-f"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "-f", "m.txt"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-f", "m.txt"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-f"},
			want:    []string{},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-f", "-l", "debug"},
			allowed: []string{"-f"},
			want:    []string{"-f"},
		},
		{
			name:    "value containing equals sign",
			args:    []string{"-f=a=b.txt"},
			allowed: []string{"-f"},
			want:    []string{"-f=a=b.txt"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, filterArgs(tc.args, tc.allowed...))
		})
	}
}
