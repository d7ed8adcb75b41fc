// Package config loads the service configuration from a YAML file and
// normalizes it with defaults. A missing file is not an error; the defaults
// alone describe a working setup.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Chain   ChainConfig   `yaml:"chain"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StorageConfig locates the report database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ChainConfig sets the keypad chain depths: the two depths the binaries
// exercise by default and the largest depth the API will accept.
type ChainConfig struct {
	ShortDepth int `yaml:"short_depth"`
	LongDepth  int `yaml:"long_depth"`
	MaxDepth   int `yaml:"max_depth"`
}

// LoggingConfig sets the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Addr: ":8080"},
		Storage: StorageConfig{DBPath: "./data/keypad.db"},
		Chain:   ChainConfig{ShortDepth: 2, LongDepth: 25, MaxDepth: 64},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path, applies defaults for omitted fields, and
// validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	def := Default()
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
	if c.Chain.ShortDepth <= 0 {
		c.Chain.ShortDepth = def.Chain.ShortDepth
	}
	if c.Chain.LongDepth <= 0 {
		c.Chain.LongDepth = def.Chain.LongDepth
	}
	if c.Chain.MaxDepth <= 0 {
		c.Chain.MaxDepth = def.Chain.MaxDepth
	}
	if c.Chain.LongDepth > c.Chain.MaxDepth {
		return fmt.Errorf("config: chain.long_depth %d exceeds chain.max_depth %d",
			c.Chain.LongDepth, c.Chain.MaxDepth)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a config string to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("config: unknown logging.level %q", s)
}
