package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/primer/pkg/domain"
	"github.com/aretw0/primer/pkg/ports"
)

// raceWindow is how long a failed read waits for a pending cancellation.
// Ctrl+C may close stdin slightly before the signal context is cancelled.
const raceWindow = 50 * time.Millisecond

// Runner handles the execution loop of the engine using provided IO.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler over Input/Output is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	Logger *slog.Logger

	// Renderer is applied to content by the default TextHandler.
	Renderer ContentRenderer

	Input  io.Reader
	Output io.Writer
}

// NewRunner creates a new Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run drives the engine from state until the flow terminates and returns the final state.
// When the input stream ends before a requested line, the error wraps io.EOF.
// When ctx is cancelled while waiting, the error wraps ctx.Err().
func (r *Runner) Run(ctx context.Context, engine ports.StatelessEngine, state *domain.State) (*domain.State, error) {
	if state == nil {
		return nil, errors.New("runner: nil initial state")
	}
	handler := r.resolveHandler()

	for {
		if err := ctx.Err(); err != nil {
			return state, err
		}

		// A. Render
		actions, _, err := engine.Render(ctx, state)
		if err != nil {
			return state, fmt.Errorf("render error: %w", err)
		}

		// B. Output
		wantsInput, err := handler.Output(ctx, actions)
		if err != nil {
			return state, fmt.Errorf("output error: %w", err)
		}

		// C. Input
		var input any
		if wantsInput {
			val, err := r.readInput(ctx, handler, inputRequest(actions))
			if err != nil {
				return state, err
			}
			input = val
		}

		// D. Navigate
		next, err := engine.Navigate(ctx, state, input)
		if err != nil {
			return state, fmt.Errorf("navigation error: %w", err)
		}
		r.Logger.Debug("step", "from", state.CurrentNodeID, "to", next.CurrentNodeID, "input", wantsInput)

		if next.Terminated || next.Status == domain.StatusTerminated {
			return next, nil
		}
		state = next
	}
}

func (r *Runner) readInput(ctx context.Context, handler IOHandler, req domain.InputRequest) (string, error) {
	val, err := handler.Input(ctx, req)
	if err == nil {
		r.Logger.Debug("input received", "save_to", req.SaveTo, "bytes", len(val))
		return val, nil
	}

	waitForCancel(ctx, raceWindow)
	if ctx.Err() != nil {
		r.Logger.Debug("input interrupted", "err", ctx.Err())
		return "", fmt.Errorf("interrupted: %w", ctx.Err())
	}
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("input stream closed: %w", err)
	}
	return "", fmt.Errorf("input error: %w", err)
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	th := NewTextHandler(r.Input, r.Output, WithTextHandlerRenderer(r.Renderer))
	// Memoize so a second Run keeps reading from the same buffered stream.
	r.Handler = th
	return th
}

func waitForCancel(ctx context.Context, d time.Duration) {
	if ctx.Err() != nil {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
