package domain

// NodeType constants define the control flow behavior.
const (
	// NodeTypeText displays content and continues immediately (soft step).
	NodeTypeText = "text"
	// NodeTypeQuestion displays a prompt and halts waiting for input (hard step).
	NodeTypeQuestion = "question"
	// NodeTypeLogic calls a registered function and continues silently.
	NodeTypeLogic = "logic"
)

// Node represents a logical unit in the flow.
type Node struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"` // "text", "question" or "logic"

	// Content holds the template rendered for this node.
	// For a question node it is the prompt, printed without a trailing newline.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// Next is the node visited after this one. Empty means the node is terminal.
	Next string `json:"next,omitempty" yaml:"next,omitempty"`

	// SaveTo names the context key that receives the input or the logic result.
	SaveTo string `json:"save_to,omitempty" yaml:"save_to,omitempty"`

	// Do is the registered function invoked by a logic node.
	Do string `json:"do,omitempty" yaml:"do,omitempty"`

	// Args are static arguments merged over the context before calling Do.
	Args map[string]any `json:"args,omitempty" yaml:"args,omitempty"`
}

// IsTerminal reports whether the flow ends after this node.
func (n Node) IsTerminal() bool {
	return n.Next == ""
}

// NeedsInput reports whether the node blocks for user input.
func (n Node) NeedsInput() bool {
	return n.Type == NodeTypeQuestion
}
