package main

import (
	"context"
	"os"

	"github.com/aretw0/primer/internal/cli"
	"github.com/aretw0/primer/internal/config"
	"github.com/aretw0/primer/pkg/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the lesson",
	Long:  `Prints the lesson to stdout, asking once for your favorite color on stdin.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveRunOptions(cmd.Flags())
		if err != nil {
			return err
		}

		sm := runner.NewSignalManager(context.Background())
		defer sm.Stop()

		return cli.Execute(sm.Context(), opts, cli.Streams{
			In:  os.Stdin,
			Out: os.Stdout,
			Err: os.Stderr,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("rich", false, "Render content as markdown when stdout is a terminal")
	runCmd.Flags().Bool("banner", false, "Print the banner on stderr before the lesson")
	runCmd.Flags().Bool("metrics", false, "Dump run metrics on stderr when the lesson ends")

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Args = cobra.NoArgs
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}

// resolveRunOptions loads the config file and applies the flags that were set explicitly.
func resolveRunOptions(flags *pflag.FlagSet) (cli.RunOptions, error) {
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cli.RunOptions{}, err
	}

	opts := cli.RunOptions{
		JSON:     cfg.JSON,
		Rich:     cfg.Rich,
		Banner:   cfg.Banner,
		Metrics:  cfg.Metrics,
		LogLevel: cfg.LogLevel,
	}

	overrideBool(flags, "json", &opts.JSON)
	overrideBool(flags, "rich", &opts.Rich)
	overrideBool(flags, "banner", &opts.Banner)
	overrideBool(flags, "metrics", &opts.Metrics)
	overrideBool(flags, "debug", &opts.Debug)
	if flags.Changed("log-level") {
		opts.LogLevel, _ = flags.GetString("log-level")
	}
	return opts, nil
}

func overrideBool(flags *pflag.FlagSet, name string, dst *bool) {
	if flags.Lookup(name) == nil || !flags.Changed(name) {
		return
	}
	*dst, _ = flags.GetBool(name)
}
