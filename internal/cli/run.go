package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/primer/internal/logging"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	JSON     bool
	Rich     bool
	Banner   bool
	Metrics  bool
	Debug    bool
	LogLevel string
}

// Streams groups the process streams a run talks to.
// Lesson output goes to Out; logs, banner and metrics go to Err.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Execute handles the 'run' command logic.
func Execute(ctx context.Context, opts RunOptions, streams Streams) error {
	if opts.JSON && opts.Rich {
		return fmt.Errorf("--json and --rich cannot be used together")
	}

	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}

	return RunSession(ctx, opts, streams, createLogger(streams.Err, opts.Debug, level))
}
