package primer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/primer/internal/logging"
	"github.com/aretw0/primer/internal/runtime"
	"github.com/aretw0/primer/internal/validator"
	"github.com/aretw0/primer/pkg/domain"
	"github.com/aretw0/primer/pkg/lesson"
	"github.com/aretw0/primer/pkg/ports"
	"github.com/aretw0/primer/pkg/registry"
)

// Version is the primer release.
const Version = "0.3.0"

// Engine is the high-level entry point for the primer library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime      *runtime.Engine
	loader       ports.GraphLoader
	functions    *registry.Registry
	interpolator runtime.Interpolator
	variables    map[string]any
	entryNodeID  string
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLoader replaces the built-in lesson flow.
func WithLoader(l ports.GraphLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithFunctions replaces the registry backing logic nodes.
func WithFunctions(reg *registry.Registry) Option {
	return func(e *Engine) {
		e.functions = reg
	}
}

// WithInterpolator sets a custom interpolator for node content.
func WithInterpolator(interp runtime.Interpolator) Option {
	return func(e *Engine) {
		e.interpolator = interp
	}
}

// WithVariables replaces the initial context of every run.
func WithVariables(vars map[string]any) Option {
	return func(e *Engine) {
		e.variables = vars
	}
}

// WithEntryNode configures the initial node ID.
func WithEntryNode(nodeID string) Option {
	return func(e *Engine) {
		e.entryNodeID = nodeID
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine for the lesson flow, or for the flow given by WithLoader.
// The flow is validated before the Engine is returned.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		entryNodeID: lesson.EntryNode,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		flow, err := lesson.Flow()
		if err != nil {
			return nil, fmt.Errorf("failed to build lesson flow: %w", err)
		}
		eng.loader = flow
	}
	if eng.functions == nil {
		eng.functions = lesson.Functions()
	}
	if eng.interpolator == nil {
		eng.interpolator = runtime.NewTemplateInterpolator(lesson.Funcs())
	}
	if eng.variables == nil {
		eng.variables = lesson.Variables()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	if err := validator.ValidateFlow(eng.loader, eng.entryNodeID, eng.functions); err != nil {
		return nil, fmt.Errorf("invalid flow: %w", err)
	}

	eng.runtime = runtime.NewEngine(
		eng.loader,
		eng.interpolator,
		runtime.WithFunctions(eng.functions),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithEntryNode(eng.entryNodeID),
	)

	return eng, nil
}

// Start creates the initial state for a run, seeded with the configured variables.
func (e *Engine) Start(ctx context.Context) (*domain.State, error) {
	return e.runtime.Start(ctx, e.variables)
}

// Render generates the actions (view) for the current state without transitioning.
// Returns actions, isTerminal (true if the node has no successor), and error.
func (e *Engine) Render(ctx context.Context, state *domain.State) ([]domain.ActionRequest, bool, error) {
	return e.runtime.Render(ctx, state)
}

// Navigate determines the next state based on input.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input any) (*domain.State, error) {
	return e.runtime.Navigate(ctx, state, input)
}

// Inspect returns the full flow definition for visualization or introspection tools.
func (e *Engine) Inspect() ([]domain.Node, error) {
	return e.runtime.Inspect()
}

// Loader returns the underlying GraphLoader used by the engine.
func (e *Engine) Loader() ports.GraphLoader {
	return e.loader
}

// EntryNode returns the node a run starts at.
func (e *Engine) EntryNode() string {
	return e.entryNodeID
}
