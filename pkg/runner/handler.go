package runner

import (
	"context"

	"github.com/aretw0/primer/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents the actions to the user.
	// Returns true if the actions ask for user input.
	Output(ctx context.Context, actions []domain.ActionRequest) (bool, error)

	// Input presents the request's prompt and reads one response.
	// It returns io.EOF when the input stream ends before a response arrives.
	Input(ctx context.Context, req domain.InputRequest) (string, error)
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

func needsInput(actions []domain.ActionRequest) bool {
	for _, act := range actions {
		if act.Type == domain.ActionRequestInput {
			return true
		}
	}
	return false
}

func inputRequest(actions []domain.ActionRequest) domain.InputRequest {
	for _, act := range actions {
		if act.Type != domain.ActionRequestInput {
			continue
		}
		if req, ok := act.Payload.(domain.InputRequest); ok {
			return req
		}
	}
	return domain.InputRequest{Type: domain.InputText}
}
