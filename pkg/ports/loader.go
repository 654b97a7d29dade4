package ports

// GraphLoader defines how the engine retrieves node definitions.
// This allows the flow source (DSL, YAML, Memory) to be decoupled from the runtime.
type GraphLoader interface {
	// GetNode retrieves the raw JSON definition of a node by ID.
	// Missing nodes return an error wrapping domain.ErrNodeNotFound.
	GetNode(id string) ([]byte, error)

	// ListNodes returns all node IDs available in the flow, in flow order.
	// This is used for introspection and visualization tools (e.g. 'primer graph').
	ListNodes() ([]string, error)
}
