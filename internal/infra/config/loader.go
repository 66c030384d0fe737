// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the global configuration file.
const ConfigFileName = "config.toml"

// LocalFileName is the name of the per-directory configuration file.
const LocalFileName = ".todo.toml"

// Config represents the application configuration.
type Config struct {
	DataDir string    `toml:"data_dir"` // Where the task blob and logs live
	Sort    string    `toml:"sort"`     // Default sort order: newest or oldest
	Log     LogConfig `toml:"log"`      // [log] settings
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Sort:    "newest",
		Log:     LogConfig{Level: "info"},
	}
}

// defaultDataDir returns $XDG_DATA_HOME/todo, falling back to
// ~/.local/share/todo.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "todo")
}

// defaultGlobalConfigDir returns $XDG_CONFIG_HOME/todo, falling back to
// ~/.config/todo.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "todo")
}

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Directory holding the optional .todo.toml
	globalConfDir string // Global config directory (e.g. ~/.config/todo)
}

// NewLoader creates a new Loader for the given working directory.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// Load returns the merged configuration. A local .todo.toml takes
// precedence over the global file, which takes precedence over defaults.
func (l *Loader) Load() (*Config, error) {
	base := NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	if l.localDir != "" {
		local, err := l.loadFile(filepath.Join(l.localDir, LocalFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if local != nil {
			base = mergeConfigs(base, local)
		}
	}

	return base, nil
}

func (l *Loader) loadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty fields of overlay onto base.
func mergeConfigs(base, overlay *Config) *Config {
	merged := *base
	if overlay.DataDir != "" {
		merged.DataDir = overlay.DataDir
	}
	if overlay.Sort != "" {
		merged.Sort = overlay.Sort
	}
	if overlay.Log.Level != "" {
		merged.Log.Level = overlay.Log.Level
	}
	return &merged
}
