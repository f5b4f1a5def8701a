package main

import (
	"github.com/spf13/cobra"

	"github.com/yourusername/siggys-picks/internal/metrics"
	"github.com/yourusername/siggys-picks/internal/picks"
)

var (
	batchInput   string
	batchWorkers int
)

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "-", "JSON array of match inputs, - for stdin")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent evaluations (default from config)")
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Suggest picks for a slate of matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(batchInput, cmd.InOrStdin())
		if err != nil {
			return err
		}
		defer in.Close()

		matches, err := decodeMatches(in)
		if err != nil {
			return err
		}

		picksCfg, err := resolvePicksConfig()
		if err != nil {
			return err
		}

		workers := batchWorkers
		if workers <= 0 {
			workers = cfg.Batch.Workers
		}

		engine := picks.NewEngine(picksCfg, metrics.NewPickRecorder(), logger)
		records, err := engine.SuggestBatch(cmd.Context(), matches, workers)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), records)
	},
}
