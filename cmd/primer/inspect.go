package main

import (
	"github.com/aretw0/primer/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the nodes of the lesson flow",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asYAML, _ := cmd.Flags().GetBool("yaml")
		return cli.WriteInspect(cmd.OutOrStdout(), asYAML)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Bool("yaml", false, "Dump the full flow definition as YAML")
}
