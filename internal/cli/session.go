package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/primer/internal/observability"
	"github.com/aretw0/primer/internal/presentation/tui"
	"github.com/aretw0/primer/pkg/runner"
)

// RunSession executes the lesson once against the given streams.
func RunSession(ctx context.Context, opts RunOptions, streams Streams, logger *slog.Logger) error {
	if opts.Banner && !opts.JSON {
		tui.PrintBanner(streams.Err)
	}

	var metrics *observability.Metrics
	if opts.Metrics {
		metrics = observability.NewMetrics()
	}

	engine, err := createEngine(opts, logger, metrics)
	if err != nil {
		return fmt.Errorf("error initializing primer: %w", err)
	}

	runnerOpts, err := createRunnerOptions(opts, streams, logger)
	if err != nil {
		return err
	}

	finalState, runErr := engine.RunWith(ctx, runner.NewRunner(runnerOpts...))

	nodeID := engine.EntryNode()
	if finalState != nil {
		nodeID = finalState.CurrentNodeID
	}
	if runErr == nil {
		logger.Debug("Run completed", "node_id", nodeID)
	}

	if metrics != nil {
		if err := metrics.WriteText(streams.Err); err != nil {
			logger.Warn("Failed to write metrics", "error", err)
		}
	}

	return handleExecutionError(streams.Err, nodeID, runErr)
}

func createRunnerOptions(opts RunOptions, streams Streams, logger *slog.Logger) ([]runner.Option, error) {
	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithIO(streams.In, streams.Out),
	}

	if opts.JSON {
		return append(runnerOpts, runner.WithInputHandler(runner.NewJSONHandler(streams.In, streams.Out))), nil
	}

	if opts.Rich {
		if !isTerminal(streams.Out) {
			logger.Debug("Rich rendering disabled: output is not a terminal")
			return runnerOpts, nil
		}
		render, err := tui.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to create renderer: %w", err)
		}
		runnerOpts = append(runnerOpts, runner.WithRenderer(render))
	}
	return runnerOpts, nil
}
