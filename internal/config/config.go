// Package config loads shell settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	DataFile    string    `mapstructure:"dataFile"`
	CatalogFile string    `mapstructure:"catalogFile"`
	Log         LogConfig `mapstructure:"log"`
	UI          UIConfig  `mapstructure:"ui"`
}

// LogConfig controls the zerolog/lumberjack logger.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	Console    bool   `mapstructure:"console"`
	MaxSize    int    `mapstructure:"maxSize"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAge     int    `mapstructure:"maxAge"`
}

// UIConfig controls presentation.
type UIConfig struct {
	Color  bool   `mapstructure:"color"`
	Prompt string `mapstructure:"prompt"`
	Tables bool   `mapstructure:"tables"`
}

// Dir returns the per-user settings directory, ~/.stocker.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stocker"
	}
	return filepath.Join(home, ".stocker")
}

// New returns a viper instance prepared with defaults, search paths and
// environment bindings, so callers such as the CLI can bind flags before
// unmarshaling with FromViper. When configPath is empty, stocker.yaml is
// looked up in the working directory and ~/.stocker; not finding one is not
// an error.
func New(configPath string) (*viper.Viper, error) {
	v := viper.New()
	if err := read(v, configPath); err != nil {
		return nil, err
	}
	return v, nil
}

// FromViper unmarshals a prepared viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	return unmarshal(v)
}

func read(v *viper.Viper, configPath string) error {
	v.SetConfigName("stocker")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix("STOCKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFoundErr) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dataFile", "drugs.txt")
	v.SetDefault("catalogFile", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(Dir(), "stocker.log"))
	v.SetDefault("log.console", false)
	v.SetDefault("log.maxSize", 5)
	v.SetDefault("log.maxBackups", 3)
	v.SetDefault("log.maxAge", 28)

	v.SetDefault("ui.color", true)
	v.SetDefault("ui.prompt", "> ")
	v.SetDefault("ui.tables", true)
}

// Validate checks the settings the shell cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("dataFile must not be empty")
	}
	return nil
}
