package dsl

import "github.com/aretw0/primer/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node domain.Node
}

// Text sets the content of the node and marks it as a text node (soft step).
func (n *NodeBuilder) Text(content string) *NodeBuilder {
	n.node.Type = domain.NodeTypeText
	n.node.Content = content
	return n
}

// Question sets the prompt of the node and marks it as a question node (hard step).
func (n *NodeBuilder) Question(prompt string) *NodeBuilder {
	n.node.Type = domain.NodeTypeQuestion
	n.node.Content = prompt
	return n
}

// Logic marks the node as a silent call to the registered function fn.
func (n *NodeBuilder) Logic(fn string) *NodeBuilder {
	n.node.Type = domain.NodeTypeLogic
	n.node.Do = fn
	return n
}

// Arg adds a static argument passed to the logic function.
func (n *NodeBuilder) Arg(key string, value any) *NodeBuilder {
	if n.node.Args == nil {
		n.node.Args = make(map[string]any)
	}
	n.node.Args[key] = value
	return n
}

// SaveTo specifies the context variable that receives the input or logic result.
func (n *NodeBuilder) SaveTo(variable string) *NodeBuilder {
	n.node.SaveTo = variable
	return n
}

// Go sets the node visited next.
func (n *NodeBuilder) Go(target string) *NodeBuilder {
	n.node.Next = target
	return n
}

// Terminal marks the node as the end of the flow.
func (n *NodeBuilder) Terminal() *NodeBuilder {
	n.node.Next = ""
	return n
}

// Build returns the underlying domain.Node.
func (n *NodeBuilder) Build() domain.Node {
	return n.node
}
