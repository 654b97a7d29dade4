package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/primer"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of primer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "primer version %s\n", strings.TrimSpace(primer.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
