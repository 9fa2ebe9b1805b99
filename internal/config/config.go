// Package config handles persistent user preferences for ssh-roads.
//
// Preferences are stored as JSON at ~/.ssh-roads/settings.json, next to
// servers.json. They tune how connections are made and recorded; the
// server list itself is owned by package servers.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

const (
	appDir   = ".ssh-roads"
	fileName = "settings.json"
)

// pathOverride, when non-empty, replaces the default settings file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the settings file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	// History is "on" or "off". Empty means on.
	History string `json:"history,omitempty"`

	// ExpectTimeout is the number of seconds expect waits for the password
	// prompt. Empty means expect's own default.
	ExpectTimeout string `json:"expect_timeout,omitempty"`
}

// HistoryEnabled reports whether connection attempts should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c == nil || c.History != "off"
}

// ExpectTimeoutSeconds returns the configured expect timeout, or 0 when
// unset or invalid.
func (c *Config) ExpectTimeoutSeconds() int {
	if c == nil || c.ExpectTimeout == "" {
		return 0
	}
	n, err := strconv.Atoi(c.ExpectTimeout)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Path returns the absolute path to the settings file.
// If SetPath has been called, that value is returned instead.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine home directory: %w", err)
	}
	return filepath.Join(home, appDir, fileName), nil
}

// Load reads the settings file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

// loadFrom reads the config from the given path. If path is empty, the
// default Path() is used.
func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

// saveTo writes the config to the given path. If path is empty, the
// default Path() is used.
func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the config from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}
