package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings are the CLI options that are not part of a plan.
type Settings struct {
	Format    string        `mapstructure:"format"`
	LogLevel  string        `mapstructure:"log_level"`
	OutputDir string        `mapstructure:"output_dir"`
	Store     StoreSettings `mapstructure:"store"`
}

// StoreSettings select the snapshot store backend.
type StoreSettings struct {
	Backend   string `mapstructure:"backend"`
	RedisAddr string `mapstructure:"redis_addr"`
	KeyPrefix string `mapstructure:"key_prefix"`
	Retries   int    `mapstructure:"retries"`
}

const (
	EnvPrefix = "FINPLAN"

	DefaultFormat    = "console"
	DefaultLogLevel  = "info"
	DefaultOutputDir = "."
	DefaultBackend   = "memory"
	DefaultRedisAddr = "localhost:6379"
	DefaultKeyPrefix = "finplan:"
	DefaultRetries   = 3
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// NewViper returns a viper instance with defaults and FINPLAN_* environment binding.
func NewViper() *viper.Viper {
	v := viper.New()

	defaults := map[string]interface{}{
		"format":           DefaultFormat,
		"log_level":        DefaultLogLevel,
		"output_dir":       DefaultOutputDir,
		"store.backend":    DefaultBackend,
		"store.redis_addr": DefaultRedisAddr,
		"store.key_prefix": DefaultKeyPrefix,
		"store.retries":    DefaultRetries,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads an optional settings file into v and decodes the result.
// An empty path uses defaults and environment only.
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &s, s.Validate()
}

// Validate checks the settings values.
func (s *Settings) Validate() error {
	if s.Format == "" {
		return errors.New("format is required")
	}
	if !validLogLevels[strings.ToLower(s.LogLevel)] {
		return fmt.Errorf("invalid log_level %q", s.LogLevel)
	}
	switch s.Store.Backend {
	case "memory":
	case "redis":
		if s.Store.RedisAddr == "" {
			return errors.New("store.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("store.backend must be 'memory' or 'redis', got %q", s.Store.Backend)
	}
	if s.Store.Retries < 0 {
		return errors.New("invalid store.retries")
	}
	return nil
}
