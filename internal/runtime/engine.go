package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/primer/internal/logging"
	"github.com/aretw0/primer/pkg/domain"
	"github.com/aretw0/primer/pkg/ports"
	"github.com/aretw0/primer/pkg/registry"
)

// DefaultEntryNode is the node a run starts at unless WithEntryNode says otherwise.
const DefaultEntryNode = "start"

// Engine is the core flow runner.
// It is stateless: every call takes a State and returns a new one.
type Engine struct {
	loader       ports.GraphLoader
	interpolator Interpolator
	functions    *registry.Registry
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	entryNodeID  string
	now          func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithEntryNode configures the initial node ID (default: "start").
func WithEntryNode(nodeID string) EngineOption {
	return func(e *Engine) {
		if nodeID != "" {
			e.entryNodeID = nodeID
		}
	}
}

// WithFunctions sets the registry used by logic nodes.
func WithFunctions(reg *registry.Registry) EngineOption {
	return func(e *Engine) {
		e.functions = reg
	}
}

// NewEngine creates a new engine with dependencies.
// A nil interpolator renders content verbatim.
func NewEngine(loader ports.GraphLoader, interpolator Interpolator, opts ...EngineOption) *Engine {
	e := &Engine{
		loader:       loader,
		interpolator: interpolator,
		logger:       logging.NewNop(),
		entryNodeID:  DefaultEntryNode,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EntryNode returns the configured entry node ID.
func (e *Engine) EntryNode() string {
	return e.entryNodeID
}

// Start creates the initial state at the entry node, seeded with initialContext.
func (e *Engine) Start(ctx context.Context, initialContext map[string]any) (*domain.State, error) {
	node, err := e.loadNode(e.entryNodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry node: %w", err)
	}

	state := domain.NewState(node.ID)
	for k, v := range initialContext {
		state.Context[k] = v
	}

	e.logger.Debug("run started", "node_id", node.ID, "vars", len(state.Context))
	e.emitNodeEnter(ctx, node)
	return state, nil
}

// Inspect returns every node of the flow in loader order.
func (e *Engine) Inspect() ([]domain.Node, error) {
	ids, err := e.loader.ListNodes()
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	nodes := make([]domain.Node, 0, len(ids))
	for _, id := range ids {
		node, err := e.loadNode(id)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, *node)
	}
	return nodes, nil
}

func (e *Engine) loadNode(id string) (*domain.Node, error) {
	raw, err := e.loader.GetNode(id)
	if err != nil {
		return nil, err
	}
	var node domain.Node
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("failed to parse node %s: %w", id, err)
	}
	if node.ID == "" {
		node.ID = id
	}
	return &node, nil
}

func (e *Engine) emitNodeEnter(ctx context.Context, node *domain.Node) {
	if e.hooks.OnNodeEnter == nil {
		return
	}
	e.hooks.OnNodeEnter(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventNodeEnter},
		NodeID:    node.ID,
		NodeType:  node.Type,
	})
}

func (e *Engine) emitNodeLeave(ctx context.Context, node *domain.Node) {
	if e.hooks.OnNodeLeave == nil {
		return
	}
	e.hooks.OnNodeLeave(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventNodeLeave},
		NodeID:    node.ID,
		NodeType:  node.Type,
	})
}

func (e *Engine) emitLogicCall(ctx context.Context, node *domain.Node, output any, isError bool) {
	if e.hooks.OnLogicCall == nil {
		return
	}
	e.hooks.OnLogicCall(ctx, &domain.LogicEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventLogicCall},
		NodeID:    node.ID,
		Function:  node.Do,
		Output:    output,
		IsError:   isError,
	})
}
