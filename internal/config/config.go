package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete conflictpane configuration
type Config struct {
	TUI       TUIConfig       `mapstructure:"tui" yaml:"tui"`
	Conflicts ConflictsConfig `mapstructure:"conflicts" yaml:"conflicts"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the built-in color theme (default: "default")
	// Options: "default", "monokai", "nord"
	Theme string `mapstructure:"theme" yaml:"theme"`
	// ThemeFile is a YAML theme definition that replaces Theme when set
	ThemeFile string `mapstructure:"theme_file" yaml:"theme_file"`
	// KeymapFile is a YAML file overriding the default key bindings
	KeymapFile string `mapstructure:"keymap_file" yaml:"keymap_file"`
	// Namespace prefixes stub element classes (default: "github")
	Namespace string `mapstructure:"namespace" yaml:"namespace"`
}

// ConflictsConfig controls how conflicts are loaded and refreshed
type ConflictsConfig struct {
	// Ignore lists glob patterns of paths to leave out of the list.
	// Patterns use "/" as separator, so "*" stays within one directory
	// and "**" spans directories.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`
	// Watch reloads conflicts when the repository's merge state changes
	Watch bool `mapstructure:"watch" yaml:"watch"`
	// DebounceMs coalesces bursts of repository changes (in milliseconds)
	DebounceMs int `mapstructure:"debounce_ms" yaml:"debounce_ms"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled turns on the debug log file
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the minimum level written: debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is where debug.log is written. Empty means <config dir>/logs.
	// A leading ~ expands to the home directory.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Debounce returns DebounceMs as a duration.
func (c *ConflictsConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// ResolveDir returns the absolute log directory.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}

	path := l.Dir
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:     "default",
			Namespace: "github",
		},
		Conflicts: ConflictsConfig{
			Ignore:     []string{},
			Watch:      true,
			DebounceMs: 100,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.theme_file", defaults.TUI.ThemeFile)
	viper.SetDefault("tui.keymap_file", defaults.TUI.KeymapFile)
	viper.SetDefault("tui.namespace", defaults.TUI.Namespace)

	viper.SetDefault("conflicts.ignore", defaults.Conflicts.Ignore)
	viper.SetDefault("conflicts.watch", defaults.Conflicts.Watch)
	viper.SetDefault("conflicts.debounce_ms", defaults.Conflicts.DebounceMs)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when the
// loaded configuration is invalid
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "conflictpane")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".conflictpane"
	}
	return filepath.Join(home, ".config", "conflictpane")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
