package domain

// ActionRequest represents a side-effect that the engine requests the host to perform.
type ActionRequest struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Standard Action Types
const (
	// ActionRenderContent requests the host to display content to the user.
	// Payload: string (the content)
	ActionRenderContent = "RENDER_CONTENT"

	// ActionRequestInput requests the host to collect input from the user.
	// Payload: InputRequest
	ActionRequestInput = "REQUEST_INPUT"
)

// InputType defines the kind of input requested.
type InputType string

const (
	InputText InputType = "text"
)

// InputRequest describes the input needed and the prompt that introduces it.
type InputRequest struct {
	Type   InputType `json:"type"`
	Prompt string    `json:"prompt"`
	SaveTo string    `json:"save_to,omitempty"`
}
