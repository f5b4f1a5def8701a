package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/siggys-picks/internal/metrics"
	"github.com/yourusername/siggys-picks/internal/picks"
)

var (
	matchFile   string
	summaryOnly bool
)

func init() {
	pickCmd.Flags().StringVarP(&matchFile, "match", "m", "-", "Match input JSON file, - for stdin")
	pickCmd.Flags().BoolVar(&summaryOnly, "summary", false, "Print the one-line summary instead of JSON")
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Suggest a pick for one match",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(matchFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		defer in.Close()

		match, err := decodeMatch(in)
		if err != nil {
			return err
		}

		picksCfg, err := resolvePicksConfig()
		if err != nil {
			return err
		}

		engine := picks.NewEngine(picksCfg, metrics.NewPickRecorder(), logger)
		result := engine.Suggest(match)

		if summaryOnly {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), picks.Summary(result, match))
			return err
		}
		return writeJSON(cmd.OutOrStdout(), result)
	},
}
