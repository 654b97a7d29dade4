package cli

import (
	"log/slog"

	"github.com/aretw0/primer"
	"github.com/aretw0/primer/internal/observability"
)

// createEngine builds the lesson engine with the hooks the options ask for.
// metrics may be nil.
func createEngine(opts RunOptions, logger *slog.Logger, metrics *observability.Metrics) (*primer.Engine, error) {
	engineOpts := []primer.Option{
		primer.WithLogger(logger),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, primer.WithLifecycleHooks(createDebugHooks(logger)))
	}
	if metrics != nil {
		engineOpts = append(engineOpts, primer.WithLifecycleHooks(metrics.Hooks()))
	}
	return primer.New(engineOpts...)
}
