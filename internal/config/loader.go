package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/yourusername/siggys-picks/internal/models"
)

const (
	envPrefix         = "SIGGYS_PICKS"
	defaultConfigPath = "config/config.yaml"
	// ConfigPathEnv names the variable that replaces the default config path
	ConfigPathEnv = "SIGGYS_PICKS_CONFIG_PATH"
)

// ResolvePath picks the config file to read: an explicit path wins, then the
// SIGGYS_PICKS_CONFIG_PATH variable, then config/config.yaml.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if envPath := os.Getenv(ConfigPathEnv); envPath != "" {
		return envPath
	}
	return defaultConfigPath
}

// Load reads and parses the configuration from file and environment variables
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	configPath = ResolvePath(configPath)

	// Read the configuration file
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v := newViper()

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))
	if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional fields.
// A missing file is not an error; defaults and environment variables are used instead.
func LoadWithDefaults(configPath string) (*Config, error) {
	configPath = ResolvePath(configPath)

	v := newViper()
	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadPicksOverrides reads a standalone overrides file. The format follows the
// file extension (.json, .yaml, .yml, .toml). Only a read failure is a plain error;
// content that does not parse or decode wraps models.ErrInvalidOverrides.
func LoadPicksOverrides(path string) (*PicksOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file: %w", err)
	}

	v := viper.New()
	v.SetConfigType(configType(path))
	if err := v.ReadConfig(bytes.NewBuffer(data)); err != nil {
		return nil, fmt.Errorf("%w: failed to parse overrides file: %v", models.ErrInvalidOverrides, err)
	}

	return DecodeOverrides(v.AllSettings())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	// Set environment variable prefix
	v.SetEnvPrefix(envPrefix)

	// Enable automatic binding of environment variables
	v.AutomaticEnv()

	// Replace dots with underscores in environment variable names
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "siggys-picks")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout_seconds", 5)
	v.SetDefault("server.write_timeout_seconds", 10)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.rate_limit_per_second", 50)
	v.SetDefault("server.rate_limit_burst", 100)
	v.SetDefault("server.override_cache_ttl_seconds", 300)
	v.SetDefault("server.override_cache_size", 1024)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("batch.workers", 4)
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}
