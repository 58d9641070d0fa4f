package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "cli", cfg.Backend)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, DefaultWatchDelay, cfg.WatchDelay)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Config
	}{
		{
			name:     "empty document",
			input:    "",
			expected: Default(),
		},
		{
			name:  "all keys",
			input: "backend: native\nformat: yaml\ncolor: never\ntheme: dark\nwatch_delay: 1s\n",
			expected: Config{
				Backend:    "native",
				Format:     "yaml",
				Color:      "never",
				Theme:      "dark",
				WatchDelay: time.Second,
			},
		},
		{
			name:  "values are normalized",
			input: "backend: \" NATIVE \"\nformat: JSON\n",
			expected: Config{
				Backend:    "native",
				Format:     "json",
				Color:      "auto",
				Theme:      "auto",
				WatchDelay: DefaultWatchDelay,
			},
		},
		{
			name:     "unknown keys ignored",
			input:    "something_else: true\n",
			expected: Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid yaml", input: "backend: [unterminated\n"},
		{name: "unknown backend", input: "backend: svn\n"},
		{name: "unknown format", input: "format: xml\n"},
		{name: "bad duration", input: "watch_delay: soon\n"},
		{name: "negative duration", input: "watch_delay: -1s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o600))

	cfg, used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "cli", cfg.Backend)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	cfg, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: rainbow\n"), 0o600))

	cfg, _, err := Load(path)
	assert.ErrorContains(t, err, "color")
	assert.Equal(t, Default(), cfg)
}
