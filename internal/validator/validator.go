package validator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/primer/pkg/domain"
	"github.com/aretw0/primer/pkg/ports"
	"github.com/aretw0/primer/pkg/registry"
)

// FlowError lists every problem found in a flow.
type FlowError struct {
	Problems []string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("found %d errors:\n- %s", len(e.Problems), strings.Join(e.Problems, "\n- "))
}

// ValidateFlow walks the flow from startNodeID and reports broken links, cycles,
// misconfigured nodes and nodes that can never be reached.
// If reg is not nil, logic nodes must name a registered function.
func ValidateFlow(loader ports.GraphLoader, startNodeID string, reg *registry.Registry) error {
	if _, err := loader.GetNode(startNodeID); err != nil {
		return fmt.Errorf("start node '%s' not found: %w", startNodeID, err)
	}

	var problems []string
	visited := make(map[string]bool)

	for current := startNodeID; current != ""; {
		if visited[current] {
			problems = append(problems, fmt.Sprintf("Cycle detected: '%s' is reached twice", current))
			break
		}
		visited[current] = true

		raw, err := loader.GetNode(current)
		if err != nil {
			problems = append(problems, fmt.Sprintf("Missing node or load error: '%s'", current))
			break
		}

		var node domain.Node
		if err := json.Unmarshal(raw, &node); err != nil {
			problems = append(problems, fmt.Sprintf("Node '%s' cannot be parsed: %v", current, err))
			break
		}

		problems = append(problems, checkNode(current, node, reg)...)
		current = node.Next
	}

	ids, err := loader.ListNodes()
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}
	for _, id := range ids {
		if !visited[id] {
			problems = append(problems, fmt.Sprintf("Unreachable node: '%s'", id))
		}
	}

	if len(problems) > 0 {
		return &FlowError{Problems: problems}
	}
	return nil
}

func checkNode(id string, node domain.Node, reg *registry.Registry) []string {
	var problems []string
	switch node.Type {
	case domain.NodeTypeText:
	case domain.NodeTypeQuestion:
		if node.SaveTo == "" {
			problems = append(problems, fmt.Sprintf("Question node '%s' has no save_to", id))
		}
	case domain.NodeTypeLogic:
		switch {
		case node.Do == "":
			problems = append(problems, fmt.Sprintf("Logic node '%s' has no function", id))
		case reg != nil && !reg.Has(node.Do):
			problems = append(problems, fmt.Sprintf("Logic node '%s' calls unregistered function '%s'", id, node.Do))
		}
	default:
		problems = append(problems, fmt.Sprintf("Node '%s' has unknown type '%s'", id, node.Type))
	}

	if node.SaveTo == domain.KeySystem || strings.HasPrefix(node.SaveTo, domain.KeySystem+".") {
		problems = append(problems, fmt.Sprintf("Node '%s' saves into reserved namespace '%s'", id, node.SaveTo))
	}
	return problems
}
