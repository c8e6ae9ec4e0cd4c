package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name:     "all flags",
			args:     []string{"cmd", "-s", "/tmp/s.json", "-f", "seed.yaml", "-l", "debug"},
			expected: &Config{StorageFilePath: "/tmp/s.json", SeedFilePath: "seed.yaml", LogLevel: "debug"},
		},
		{
			name:     "no flags keeps existing values",
			args:     []string{"cmd"},
			expected: &Config{StorageFilePath: "session.json", LogLevel: "info"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected.StorageFilePath, cfg.StorageFilePath)
			assert.Equal(t, tt.expected.SeedFilePath, cfg.SeedFilePath)
			assert.Equal(t, tt.expected.LogLevel, cfg.LogLevel)
		})
	}
}
