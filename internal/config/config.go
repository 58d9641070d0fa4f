// Package config loads gitporcelain defaults from an optional YAML file in the
// XDG config directory. Command-line flags override anything read here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const appName = "gitporcelain"

const DefaultWatchDelay = 350 * time.Millisecond

var (
	Backends = []string{"cli", "native"}
	Formats  = []string{"text", "json", "yaml"}
	Colors   = []string{"auto", "always", "never"}
	Themes   = []string{"auto", "light", "dark"}
)

type Config struct {
	Backend    string
	Format     string
	Color      string
	Theme      string
	WatchDelay time.Duration
}

// fileConfig mirrors the on-disk layout. Empty fields keep the defaults.
type fileConfig struct {
	Backend    string `yaml:"backend"`
	Format     string `yaml:"format"`
	Color      string `yaml:"color"`
	Theme      string `yaml:"theme"`
	WatchDelay string `yaml:"watch_delay"`
}

func Default() Config {
	return Config{
		Backend:    "cli",
		Format:     "text",
		Color:      "auto",
		Theme:      "auto",
		WatchDelay: DefaultWatchDelay,
	}
}

// Path returns the first existing config file under the XDG config dirs, or
// an empty string when none exists.
func Path() string {
	for _, name := range []string{"config.yaml", "config.yml"} {
		if p, err := xdg.SearchConfigFile(filepath.Join(appName, name)); err == nil {
			return p
		}
	}
	return ""
}

// Load reads configPath, or the discovered XDG file when configPath is empty.
// A missing discovered file is not an error; a missing explicit file is.
func Load(configPath string) (Config, string, error) {
	cfg := Default()
	path := configPath
	if path == "" {
		path = Path()
		if path == "" {
			return cfg, "", nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if configPath == "" && errors.Is(err, fs.ErrNotExist) {
			return cfg, "", nil
		}
		return cfg, path, fmt.Errorf("read config: %w", err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return Default(), path, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}

// Parse decodes YAML config data on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	setString(&cfg.Backend, raw.Backend)
	setString(&cfg.Format, raw.Format)
	setString(&cfg.Color, raw.Color)
	setString(&cfg.Theme, raw.Theme)
	if d := strings.TrimSpace(raw.WatchDelay); d != "" {
		delay, err := time.ParseDuration(d)
		if err != nil {
			return cfg, fmt.Errorf("watch_delay: %w", err)
		}
		cfg.WatchDelay = delay
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	check := func(key, value string, allowed []string) {
		if !slices.Contains(allowed, value) {
			errs = append(errs, fmt.Errorf("%s: unsupported value %q (want one of %s)", key, value, strings.Join(allowed, ", ")))
		}
	}
	check("backend", c.Backend, Backends)
	check("format", c.Format, Formats)
	check("color", c.Color, Colors)
	check("theme", c.Theme, Themes)
	if c.WatchDelay <= 0 {
		errs = append(errs, fmt.Errorf("watch_delay: must be positive, got %s", c.WatchDelay))
	}
	return errors.Join(errs...)
}

func setString(dst *string, value string) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value != "" {
		*dst = value
	}
}
