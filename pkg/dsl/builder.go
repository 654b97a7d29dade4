package dsl

import (
	"fmt"

	"github.com/aretw0/primer/pkg/adapters/memory"
	"github.com/aretw0/primer/pkg/domain"
)

// Builder manages the flow construction.
type Builder struct {
	nodes map[string]*NodeBuilder
	order []string
}

// New creates a new flow builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new node in the flow.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node: domain.Node{
			ID: id,
		},
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Build compiles the flow into a memory Loader, preserving declaration order.
func (b *Builder) Build() (*memory.Loader, error) {
	nodes := make([]domain.Node, 0, len(b.order))
	for _, id := range b.order {
		nodes = append(nodes, b.nodes[id].node)
	}

	loader, err := memory.NewFromNodes(nodes...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}

	return loader, nil
}
