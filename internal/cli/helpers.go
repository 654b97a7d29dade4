package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/primer/internal/logging"
	"github.com/aretw0/primer/pkg/domain"
	"golang.org/x/term"
)

// createLogger builds the stderr logger. --debug wins over the configured level.
func createLogger(w io.Writer, debug bool, level slog.Level) *slog.Logger {
	if debug {
		level = slog.LevelDebug
	}
	return logging.NewWithWriter(w, level)
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Enter Node", "node_id", e.NodeID, "type", e.NodeType)
		},
		OnNodeLeave: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Leave Node", "node_id", e.NodeID)
		},
		OnLogicCall: func(ctx context.Context, e *domain.LogicEvent) {
			if e.IsError {
				logger.Debug("Logic Call (Error)", "function", e.Function, "err", e.Output)
			} else {
				logger.Debug("Logic Call (Success)", "function", e.Function, "node_id", e.NodeID)
			}
		},
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

// handleExecutionError turns interruptions into a clean exit and reports them on w.
func handleExecutionError(w io.Writer, nodeID string, err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		fmt.Fprintf(w, "\n>>> Interrupted at '%s' node.\n", nodeID)
		return nil
	}
	return err
}
