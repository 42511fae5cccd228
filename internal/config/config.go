// Package config handles loading the issuepad config.toml file.
//
// The config supplies the GitHub credential, the username whose
// repositories are listed, the data directory for the local caches, and
// minor UI preferences. It is loaded once and passed by value into the
// components that need it; there is no ambient configuration state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/issuepad/internal/paths"
)

// Sort orders for issue lists.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// Config represents the config.toml configuration file.
type Config struct {
	GitHub GitHub `toml:"github"`
	Data   Data   `toml:"data"`
	UI     UI     `toml:"ui"`
}

// GitHub contains the API credential and account settings.
type GitHub struct {
	// Token is the bearer credential for the GitHub API. Stored in
	// plain text; file permissions are the only protection.
	Token string `toml:"token"`

	// Username is the account whose repositories are listed.
	Username string `toml:"username"`

	// PageSize caps list responses. Zero means the client default.
	PageSize int `toml:"page-size"`
}

// Data contains storage settings.
type Data struct {
	// Dir is the data directory for issue caches, the repository list,
	// and the orphan archive. Empty means the platform default.
	Dir string `toml:"dir"`
}

// UI contains presentation preferences.
type UI struct {
	// Sort orders issue lists within a category: "newest" or "oldest"
	// first. Defaults to newest.
	Sort string `toml:"sort"`
}

// Load reads the config file at path. A missing file yields a usable
// zero config; callers that need a token check for one explicitly.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to path, creating parent directories. The file
// is created user-only readable since it holds the token.
func Save(path string, cfg *Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var builder strings.Builder
	if err := toml.NewEncoder(&builder).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, []byte(builder.String()), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// DataDir resolves the configured data directory, falling back to the
// platform default.
func (c *Config) DataDir() (string, error) {
	return paths.ResolveWithDefault(c.Data.Dir, paths.DefaultDataDir)
}

// OldestFirst reports the configured sort direction.
func (c *Config) OldestFirst() bool {
	return c.UI.Sort == SortOldest
}

func (c *Config) validate() error {
	switch c.UI.Sort {
	case "", SortNewest, SortOldest:
		return nil
	default:
		return fmt.Errorf("invalid ui.sort %q: expected %q or %q", c.UI.Sort, SortNewest, SortOldest)
	}
}
