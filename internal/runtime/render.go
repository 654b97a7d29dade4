package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/primer/pkg/domain"
)

// Render generates the actions (view) for the current state without transitioning.
// Returns actions, isTerminal (true if the node has no successor), and error.
func (e *Engine) Render(ctx context.Context, state *domain.State) ([]domain.ActionRequest, bool, error) {
	if state.Status == domain.StatusTerminated {
		return nil, true, nil
	}

	node, err := e.loadNode(state.CurrentNodeID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load node %s: %w", state.CurrentNodeID, err)
	}

	var actions []domain.ActionRequest

	switch node.Type {
	case domain.NodeTypeText:
		text, err := e.renderContent(ctx, node, state)
		if err != nil {
			return nil, false, err
		}
		if text != "" {
			actions = append(actions, domain.ActionRequest{
				Type:    domain.ActionRenderContent,
				Payload: text,
			})
		}
	case domain.NodeTypeQuestion:
		prompt, err := e.renderContent(ctx, node, state)
		if err != nil {
			return nil, false, err
		}
		actions = append(actions, domain.ActionRequest{
			Type: domain.ActionRequestInput,
			Payload: domain.InputRequest{
				Type:   domain.InputText,
				Prompt: prompt,
				SaveTo: node.SaveTo,
			},
		})
	case domain.NodeTypeLogic:
		// Silent step.
	default:
		return nil, false, fmt.Errorf("node %s has unknown type %q", node.ID, node.Type)
	}

	e.logger.Debug("node rendered", "node_id", node.ID, "type", node.Type, "actions", len(actions))
	return actions, node.IsTerminal(), nil
}

// renderContent handles interpolation of node text.
func (e *Engine) renderContent(ctx context.Context, node *domain.Node, state *domain.State) (string, error) {
	if e.interpolator == nil {
		return node.Content, nil
	}

	out, err := e.interpolator(ctx, node.Content, templateData(state))
	if err != nil {
		return "", fmt.Errorf("rendering node %s failed during interpolation: %w", node.ID, err)
	}
	return out, nil
}

func templateData(state *domain.State) map[string]any {
	data := make(map[string]any, len(state.Context)+1)
	for k, v := range state.Context {
		data[k] = v
	}
	data[domain.KeySystem] = state.SystemContext
	return data
}
