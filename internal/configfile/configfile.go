// Package configfile provides the key/value settings file for octoctl.
//
// The settings file supplies default values for the printer base URL and
// API key so operators do not need to pass --url and --apikey on every
// invocation. Values resolve in three tiers: CLI flag overrides file value,
// file value overrides the hardcoded default. The resolution function is
// exported separately so precedence is testable independently of flag
// parsing.
package configfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the persisted printer connection defaults. Both fields are
// optional; a missing settings file behaves exactly like an empty one.
type Config struct {
	BaseURL string `json:"baseurl,omitempty"`
	APIKey  string `json:"apikey,omitempty"`
}

// DefaultPath returns the per-user settings file location, following the
// platform configuration directory convention (e.g.
// ~/.config/octoctl/config.json on Linux).
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "octoctl", "config.json"), nil
}

// Read loads the settings file at path. A missing file is not an error and
// yields an empty Config so first runs work without any setup; a present
// but malformed file is reported so typos do not silently drop defaults.
func Read(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("malformed settings file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the settings file at path, creating parent directories as
// needed. The file is written with owner-only permissions since it carries
// the printer API key.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// Resolve applies the three-tier precedence for a single setting: a
// non-empty flag value wins, otherwise a non-empty file value, otherwise
// the hardcoded fallback.
func Resolve(flagValue, fileValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if fileValue != "" {
		return fileValue
	}
	return fallback
}
