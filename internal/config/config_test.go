package config

import (
	"os"
	"strings"
	"testing"
)

const (
	validConfigPath              = "testdata/valid_config.yaml"
	expansionConfigPath          = "testdata/expansion_config.yaml"
	invalidPicksConfigPath       = "testdata/invalid_picks_config.yaml"
	nonexistentConfigPath        = "testdata/nonexistent_config.yaml"
	expectedNoErrorLoadingConfig = "expected no error loading config, got %v"
	expectedNoErrorMsg           = "expected no error, got %v"
	expectedNonNilConfig         = "expected non-nil config"
	siggysPicksName              = "siggys-picks"
	developmentEnv               = "development"
	invalidEnv                   = "invalid"
	testAppName                  = "test-app"
	testAppNameVar               = "TEST_APP_NAME"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg == nil {
		t.Fatal(expectedNonNilConfig)
	}

	if cfg.App.Name != siggysPicksName {
		t.Errorf("expected app name '%s', got '%s'", siggysPicksName, cfg.App.Name)
	}

	if cfg.App.Environment != developmentEnv {
		t.Errorf("expected environment '%s', got '%s'", developmentEnv, cfg.App.Environment)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected server port 8080, got %d", cfg.Server.Port)
	}

	if cfg.Batch.Workers != 4 {
		t.Errorf("expected 4 batch workers, got %d", cfg.Batch.Workers)
	}

	if cfg.Server.RateLimitBurst != 40 || cfg.Server.OverrideCacheSize != 256 {
		t.Errorf("expected rate limit burst 40 and cache size 256, got %d and %d",
			cfg.Server.RateLimitBurst, cfg.Server.OverrideCacheSize)
	}
}

// TestLoadConfigPicksSection tests that the picks section is merged onto the defaults
func TestLoadConfigPicksSection(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	pc, err := cfg.PicksConfig()
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if pc.MarketWeight != 0.7 {
		t.Errorf("expected marketWeight 0.7, got %v", pc.MarketWeight)
	}
	if pc.StatsBounds.GFPerGame.Max != 4.2 {
		t.Errorf("expected gfPerGame.max 4.2, got %v", pc.StatsBounds.GFPerGame.Max)
	}
	if pc.StatsBounds.GFPerGame.Min != 2.2 {
		t.Errorf("expected gfPerGame.min to keep default 2.2, got %v", pc.StatsBounds.GFPerGame.Min)
	}
	if pc.Siggy.JuicyUnderdogMinML != 140 {
		t.Errorf("expected juicyUnderdogMinML 140, got %d", pc.Siggy.JuicyUnderdogMinML)
	}
	if pc.Siggy.UnderdogBump != 0.018 {
		t.Errorf("expected underdogBump to keep default 0.018, got %v", pc.Siggy.UnderdogBump)
	}
}

// TestLoadConfigFileNotFound tests handling of missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load(nonexistentConfigPath)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadWithDefaultsMissingFile tests that defaults fill in when no file exists
func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Name != siggysPicksName {
		t.Errorf("expected default app name '%s', got '%s'", siggysPicksName, cfg.App.Name)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("expected default metrics path, got '%s'", cfg.Metrics.Path)
	}
	if cfg.Picks != nil {
		t.Errorf("expected no picks overrides, got %+v", cfg.Picks)
	}
	if cfg.Server.RateLimitPerSecond != 50 || cfg.Server.RateLimitBurst != 100 {
		t.Errorf("expected default rate limit 50/100, got %v/%d", cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)
	}
	if cfg.Server.OverrideCacheTTLSeconds != 300 {
		t.Errorf("expected default override cache ttl 300, got %d", cfg.Server.OverrideCacheTTLSeconds)
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

// TestLoadConfigEnvironmentVariables tests environment variable override
func TestLoadConfigEnvironmentVariables(t *testing.T) {
	t.Setenv("SIGGYS_PICKS_APP_NAME", testAppName)

	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.App.Name != testAppName {
		t.Errorf("expected app name '%s' from environment, got '%s'", testAppName, cfg.App.Name)
	}
}

// TestLoadConfigEnvironmentVariableExpansion tests ${VAR} expansion in the config file
func TestLoadConfigEnvironmentVariableExpansion(t *testing.T) {
	t.Setenv(testAppNameVar, "expanded-name")

	cfg, err := Load(expansionConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config with expansion, got %v", err)
	}

	if cfg.App.Name != "expanded-name" {
		t.Errorf("expected app name 'expanded-name' from expansion, got '%s'", cfg.App.Name)
	}
}

// TestResolvePath tests config path precedence
func TestResolvePath(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")
	if got := ResolvePath(""); got != defaultConfigPath {
		t.Errorf("expected default path, got '%s'", got)
	}

	t.Setenv(ConfigPathEnv, "/etc/siggys/config.yaml")
	if got := ResolvePath(""); got != "/etc/siggys/config.yaml" {
		t.Errorf("expected env path, got '%s'", got)
	}
	if got := ResolvePath("local.yaml"); got != "local.yaml" {
		t.Errorf("expected explicit path, got '%s'", got)
	}
}

// TestValidateSuccess tests validation of a valid configuration
func TestValidateSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("expected no validation error, got %v", err)
	}
}

// TestValidateInvalidEnvironment tests validation of invalid environment
func TestValidateInvalidEnvironment(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.Environment = invalidEnv
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid environment")
	}
	if !strings.Contains(err.Error(), "development, staging, production") {
		t.Errorf("expected environment validation message, got: %v", err)
	}
}

// TestValidateInvalidLogLevel tests validation of unknown log levels
func TestValidateInvalidLogLevel(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.LogLevel = "verbose"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for invalid log level")
	}
}

// TestValidateInvertedPicksBounds tests that bad picks overrides fail app validation
func TestValidateInvertedPicksBounds(t *testing.T) {
	cfg, err := Load(invalidPicksConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for inverted ppPct bounds")
	}
	if !strings.Contains(err.Error(), "PPPct") {
		t.Errorf("expected ppPct bounds error, got: %v", err)
	}

	pc, err := cfg.PicksConfig()
	if err == nil {
		t.Fatal("expected PicksConfig to report the invalid overrides")
	}
	if pc != DefaultPicksConfig() {
		t.Errorf("expected fallback to defaults, got %+v", pc)
	}
}

// TestValidateProductionDebug tests production cross-field rule
func TestValidateProductionDebug(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.Environment = "production"
	cfg.App.LogLevel = "debug"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for debug logging in production")
	}
}

// TestIsDevelopment tests environment check function
func TestIsDevelopment(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: developmentEnv},
	}

	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return true")
	}

	if cfg.IsProduction() {
		t.Error("expected IsProduction() to return false")
	}
}

// TestIsStaging tests staging environment check
func TestIsStaging(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "staging"},
	}

	if !cfg.IsStaging() {
		t.Error("expected IsStaging() to return true")
	}

	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return false")
	}
}

func TestMain(m *testing.M) {
	os.Unsetenv(ConfigPathEnv)
	os.Exit(m.Run())
}
