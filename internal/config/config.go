// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultOutputDir    = "Outputs"
	DefaultBaseFile     = "theme-base.css"
	DefaultMergedOutput = "base.merged.css"
)

// Config represents the tokentheme configuration.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Merge    MergeConfig    `toml:"merge"`
}

// GenerateConfig holds options for the token-to-CSS generator.
type GenerateConfig struct {
	OutputDir        string            `toml:"output_dir"`         // Directory for <name>.css
	StrictLineHeight bool              `toml:"strict_line_height"` // Emit line heights as ratios
	Mapping          map[string]string `toml:"mapping"`            // Overrides for the name table
}

// MergeConfig holds options for the theme merger.
type MergeConfig struct {
	Base          string   `toml:"base"`           // Stylesheet holding the @theme block
	Themes        []string `toml:"themes"`         // Merged in order; earlier wins
	Output        string   `toml:"output"`         // Merged file, relative to the working directory
	InlineImports bool     `toml:"inline_imports"` // Inline local @imports of theme files
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			OutputDir: DefaultOutputDir,
			Mapping:   make(map[string]string),
		},
		Merge: MergeConfig{
			Base:   DefaultBaseFile,
			Output: DefaultMergedOutput,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tokentheme", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Generate.Mapping == nil {
		cfg.Generate.Mapping = make(map[string]string)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the merge settings for mistakes that would silently
// produce a wrong result.
func (c *Config) Validate() error {
	if c.Merge.Output == "" {
		return errors.New("merge.output must not be empty")
	}
	for _, theme := range c.Merge.Themes {
		if theme == "" {
			return errors.New("merge.themes contains an empty path")
		}
		if filepath.Clean(theme) == filepath.Clean(c.Merge.Base) {
			return fmt.Errorf("theme %q is the base file", theme)
		}
	}
	return nil
}
