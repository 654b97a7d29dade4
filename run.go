package primer

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/primer/pkg/domain"
	"github.com/aretw0/primer/pkg/runner"
)

// Run executes the lesson once, reading the single answer from in and writing the
// lesson to out. Engine options (hooks, logger) are applied as given.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts ...Option) error {
	eng, err := New(opts...)
	if err != nil {
		return err
	}
	_, err = eng.RunWith(ctx, runner.NewRunner(
		runner.WithIO(in, out),
		runner.WithLogger(eng.logger),
	))
	return err
}

// RunWith starts a new run and drives it to completion with r.
func (e *Engine) RunWith(ctx context.Context, r *runner.Runner) (*domain.State, error) {
	state, err := e.Start(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start: %w", err)
	}
	return r.Run(ctx, e, state)
}
