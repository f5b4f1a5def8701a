package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/siggys-picks/internal/config"
	applogger "github.com/yourusername/siggys-picks/internal/logger"
	"github.com/yourusername/siggys-picks/internal/metrics"
	"github.com/yourusername/siggys-picks/internal/models"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile    string
	overridesFile string
	logLevel      string
	logger        *logrus.Logger
	cfg           *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file (default $SIGGYS_PICKS_CONFIG_PATH or ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&overridesFile, "overrides", "o", "", "Path to a pick overrides file (json or yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(pickCmd, batchCmd, configCmd, serveCmd, versionCmd)
}

var rootCmd = &cobra.Command{
	Use:           "siggys-picks",
	Short:         "NHL moneyline and puckline picks",
	Long:          `Blends de-vigged market odds with team statistics into a moneyline pick, a confidence score and an optional underdog puckline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		setupLogger()
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "siggys-picks %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	loaded, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.App.LogLevel = logLevel
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func setupLogger() {
	// stdout carries command output, so logs go to stderr
	logger = applogger.NewLoggerFor(cfg.App.LogLevel, cfg.App.Environment, os.Stderr)
	logger.WithFields(logrus.Fields{
		"version":     Version,
		"environment": cfg.App.Environment,
	}).Debug("Configuration loaded")
}

// resolvePicksConfig returns the engine constants: the --overrides file when given,
// otherwise the picks section of the app config. Invalid overrides fall back to the
// defaults; only an unreadable file is an error.
func resolvePicksConfig() (config.PicksConfig, error) {
	audit := applogger.NewAuditLogger(logger)

	source := "config"
	overrides := cfg.Picks
	if overridesFile != "" {
		source = overridesFile
		loaded, err := config.LoadPicksOverrides(overridesFile)
		if err != nil && !errors.Is(err, models.ErrInvalidOverrides) {
			return config.PicksConfig{}, err
		}
		if err != nil {
			audit.LogConfigFallback(source, err)
			metrics.RecordConfigFallback()
			return config.DefaultPicksConfig(), nil
		}
		overrides = loaded
	}

	picksCfg, err := config.ResolveChecked(overrides)
	if err != nil {
		audit.LogConfigFallback(source, err)
		metrics.RecordConfigFallback()
		return picksCfg, nil
	}
	audit.LogConfigResolved(source, picksCfg.MarketWeight, overrides != nil)
	return picksCfg, nil
}
