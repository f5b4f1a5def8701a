package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yourusername/siggys-picks/internal/metrics"
	"github.com/yourusername/siggys-picks/internal/picks"
	"github.com/yourusername/siggys-picks/internal/server"
)

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (default from config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve picks over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		picksCfg, err := resolvePicksConfig()
		if err != nil {
			return err
		}

		settings := cfg.Server
		if servePort > 0 {
			settings.Port = servePort
		}
		if cfg.Metrics.Enabled {
			metrics.InitRegistry()
		}

		recorder := metrics.NewPickRecorder()
		srv := server.NewServer(server.Config{
			ServiceName: cfg.App.Name,
			Version:     Version,
			Commit:      GitCommit,
			Server:      settings,
			Metrics:     cfg.Metrics,
			Logger:      logger,
			Engine:      picks.NewEngine(picksCfg, recorder, logger),
			Recorder:    recorder,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()
		logger.Info("Shutdown signal received")
		return srv.Shutdown()
	},
}
