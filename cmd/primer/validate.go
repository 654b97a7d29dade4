package main

import (
	"fmt"

	"github.com/aretw0/primer/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the lesson flow for consistency",
	Long:  `Crawls the flow from the entry node and reports dead links, cycles or unreachable nodes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Flow is valid!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
