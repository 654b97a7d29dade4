package domain

// Reserved context keys.
const (
	// KeySystem is the namespace that holds host-owned values. Nodes cannot save into it.
	KeySystem = "sys"

	// KeyAnswer is the SystemContext key that always holds the latest input or logic result.
	KeyAnswer = "ans"
)
