package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/primer/pkg/domain"
)

// applyInput creates the next state and applies SaveTo.
// The value is also stored under 'sys.ans' so templates can reach the latest answer.
func (e *Engine) applyInput(current *domain.State, node *domain.Node, value any) (*domain.State, error) {
	if node.SaveTo == domain.KeySystem || strings.HasPrefix(node.SaveTo, domain.KeySystem+".") {
		return nil, fmt.Errorf("node %s cannot save to %q: %w", node.ID, node.SaveTo, domain.ErrReservedNamespace)
	}

	next := current.Clone()
	next.SystemContext[domain.KeyAnswer] = value

	if node.SaveTo != "" {
		next.Context[node.SaveTo] = value
	}
	return next, nil
}
