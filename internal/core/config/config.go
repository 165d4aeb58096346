// Package config handles configuration loading and validation for blob.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/blob/internal/core/styles"
	"gopkg.in/yaml.v3"
)

// DefaultPrompt is printed before each line the user types.
const DefaultPrompt = ">> "

// Config holds the application configuration.
type Config struct {
	// TasksFile is the task storage file. Relative paths resolve against DataDir.
	TasksFile string        `yaml:"tasks_file"`
	Prompt    string        `yaml:"prompt"`
	Theme     string        `yaml:"theme"`
	Plain     bool          `yaml:"plain"` // disable styled output
	History   HistoryConfig `yaml:"history"`
	DataDir   string        `yaml:"-"` // set by caller, not from config file
}

// HistoryConfig controls the command history log.
type HistoryConfig struct {
	Enabled    *bool `yaml:"enabled"` // nil = enabled
	MaxEntries int   `yaml:"max_entries"`
}

// IsEnabled reports whether command history is recorded.
func (h HistoryConfig) IsEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TasksFile: "tasks.txt",
		Prompt:    DefaultPrompt,
		Theme:     styles.DefaultTheme,
		History: HistoryConfig{
			MaxEntries: 500,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TasksFile == "" {
		c.TasksFile = defaults.TasksFile
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	if c.History.MaxEntries < 0 {
		return fmt.Errorf("history.max_entries cannot be negative")
	}

	return nil
}

// TasksPath returns the absolute or data-dir-relative path of the task file.
func (c *Config) TasksPath() string {
	if filepath.IsAbs(c.TasksFile) {
		return c.TasksFile
	}
	return filepath.Join(c.DataDir, c.TasksFile)
}

// HistoryFile returns the path to the command history JSON file.
func (c *Config) HistoryFile() string {
	return filepath.Join(c.DataDir, "history.json")
}

// Palette returns the configured theme palette.
func (c *Config) Palette() styles.Palette {
	p, ok := styles.GetPalette(c.Theme)
	if !ok {
		p, _ = styles.GetPalette(styles.DefaultTheme)
	}
	return p
}
