package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Tools contains probing tool locations. Empty values mean "search the
// well-known locations and PATH".
type Tools struct {
	MediaInfoPath string `toml:"mediainfo_path"`
	FFprobePath   string `toml:"ffprobe_path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// History contains configuration for the scan history store.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config encapsulates all configuration values for metaprobe.
type Config struct {
	Tools   Tools   `toml:"tools"`
	Logging Logging `toml:"logging"`
	History History `toml:"history"`
	// ProfilePath points to an optional TOML file whose mapping tables
	// override the embedded defaults table-by-table.
	ProfilePath string `toml:"profile_path"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/metaprobe/config.toml")
}

// Load parses and validates a configuration file. An empty path means the
// default location; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}
	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		return errors.New("history.path must be set when history is enabled")
	}
	return nil
}

func (c *Config) normalize() error {
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	if c.ProfilePath, err = expandPath(c.ProfilePath); err != nil {
		return fmt.Errorf("profile_path: %w", err)
	}
	if c.Tools.MediaInfoPath, err = expandPath(c.Tools.MediaInfoPath); err != nil {
		return fmt.Errorf("tools.mediainfo_path: %w", err)
	}
	if c.Tools.FFprobePath, err = expandPath(c.Tools.FFprobePath); err != nil {
		return fmt.Errorf("tools.ffprobe_path: %w", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		resolved = defaultPath
	} else {
		expanded, err := expandPath(resolved)
		if err != nil {
			return "", false, err
		}
		resolved = expanded
	}

	if _, err := os.Stat(resolved); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return resolved, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return resolved, true, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Clean(trimmed), nil
}
