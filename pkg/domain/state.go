package domain

// ExecutionStatus defines the current mode of the engine mechanics.
type ExecutionStatus string

const (
	StatusActive     ExecutionStatus = "active"     // Normal operation
	StatusTerminated ExecutionStatus = "terminated" // Sink state reached
)

// State represents the current snapshot of the execution.
type State struct {
	// CurrentNodeID is the identifier of the active node.
	CurrentNodeID string `json:"current_node_id"`

	// Status indicates if the run is active or done.
	Status ExecutionStatus `json:"status"`

	// Context holds the lesson variables (User space).
	Context map[string]any `json:"context"`

	// SystemContext holds host-level values (read-only for templates).
	// Reserved namespace: "sys".
	SystemContext map[string]any `json:"system_context"`

	// History tracks the path taken.
	History []string `json:"history"`

	// Terminated indicates if the execution has reached a sink state.
	Terminated bool `json:"terminated"`
}

// NewState creates a clean state starting at a specific node.
func NewState(startNodeID string) *State {
	return &State{
		CurrentNodeID: startNodeID,
		Status:        StatusActive,
		Context:       make(map[string]any),
		SystemContext: make(map[string]any),
		History:       []string{startNodeID},
	}
}

// Clone returns a copy whose maps and history can be mutated independently.
// Values stored in the maps are copied shallowly.
func (s *State) Clone() *State {
	next := *s
	next.Context = make(map[string]any, len(s.Context))
	for k, v := range s.Context {
		next.Context[k] = v
	}
	next.SystemContext = make(map[string]any, len(s.SystemContext))
	for k, v := range s.SystemContext {
		next.SystemContext[k] = v
	}
	next.History = append([]string(nil), s.History...)
	return &next
}
