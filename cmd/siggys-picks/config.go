package main

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective pick configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		picksCfg, err := resolvePicksConfig()
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), picksCfg)
	},
}
