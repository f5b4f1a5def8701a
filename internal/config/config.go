// Package config provides configuration management for the Siggy's Picks engine and its tools.
package config

// Config represents the complete application configuration
type Config struct {
	App     AppConfig       `mapstructure:"app" validate:"required"`
	Server  ServerConfig    `mapstructure:"server" validate:"required"`
	Metrics MetricsConfig   `mapstructure:"metrics" validate:"required"`
	Batch   BatchConfig     `mapstructure:"batch"`
	Picks   *PicksOverrides `mapstructure:"picks"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the HTTP surface configuration
type ServerConfig struct {
	Port                int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSeconds  int `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	MaxBodyBytes        int `mapstructure:"max_body_bytes" validate:"gte=0"`

	// RateLimitPerSecond caps POST /v1/picks; 0 disables the limiter
	RateLimitPerSecond      float64 `mapstructure:"rate_limit_per_second" validate:"gte=0"`
	RateLimitBurst          int     `mapstructure:"rate_limit_burst" validate:"gte=0"`
	OverrideCacheTTLSeconds int     `mapstructure:"override_cache_ttl_seconds" validate:"gte=0"`
	OverrideCacheSize       int     `mapstructure:"override_cache_size" validate:"gte=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required,startswith=/"`
}

// BatchConfig controls batch evaluation
type BatchConfig struct {
	Workers int `mapstructure:"workers" validate:"gte=0,lte=256"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// PicksConfig resolves the engine constants from the picks section.
// On invalid overrides it returns the defaults together with the reason.
func (c *Config) PicksConfig() (PicksConfig, error) {
	return ResolveChecked(c.Picks)
}
