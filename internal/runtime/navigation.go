package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/primer/pkg/domain"
)

// Navigate applies input to the current node and moves to its successor.
// Question nodes store the input verbatim; logic nodes call their function and store the result.
// Leaving a terminal node marks the state as terminated.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input any) (*domain.State, error) {
	if state.Status == domain.StatusTerminated {
		return state, nil
	}

	node, err := e.loadNode(state.CurrentNodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load node %s: %w", state.CurrentNodeID, err)
	}

	var next *domain.State
	switch node.Type {
	case domain.NodeTypeQuestion:
		next, err = e.applyInput(state, node, input)
	case domain.NodeTypeLogic:
		next, err = e.runLogic(ctx, state, node)
	default:
		next = state.Clone()
	}
	if err != nil {
		return nil, err
	}

	e.emitNodeLeave(ctx, node)

	if node.IsTerminal() {
		next.Status = domain.StatusTerminated
		next.Terminated = true
		e.logger.Debug("run terminated", "node_id", node.ID)
		return next, nil
	}

	return e.transitionTo(ctx, next, node.Next)
}

func (e *Engine) transitionTo(ctx context.Context, state *domain.State, target string) (*domain.State, error) {
	node, err := e.loadNode(target)
	if err != nil {
		return nil, fmt.Errorf("transition from %s failed: %w", state.CurrentNodeID, err)
	}

	e.logger.Debug("transition", "from", state.CurrentNodeID, "to", node.ID)
	state.CurrentNodeID = node.ID
	state.History = append(state.History, node.ID)
	e.emitNodeEnter(ctx, node)
	return state, nil
}

func (e *Engine) runLogic(ctx context.Context, state *domain.State, node *domain.Node) (*domain.State, error) {
	if e.functions == nil {
		return nil, fmt.Errorf("node %s: %w: %s (no registry configured)", node.ID, domain.ErrUnknownFunction, node.Do)
	}

	vars := make(map[string]any, len(state.Context)+len(node.Args))
	for k, v := range state.Context {
		vars[k] = v
	}
	for k, v := range node.Args {
		vars[k] = v
	}

	result, err := e.functions.Execute(ctx, node.Do, vars)
	e.emitLogicCall(ctx, node, result, err != nil)
	if err != nil {
		return nil, fmt.Errorf("node %s: logic %s failed: %w", node.ID, node.Do, err)
	}

	e.logger.Debug("logic executed", "node_id", node.ID, "func", node.Do)
	return e.applyInput(state, node, result)
}
