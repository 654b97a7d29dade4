package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/primer/pkg/domain"
)

// DefaultPrompt is printed when an input request carries no prompt of its own.
const DefaultPrompt = "> "

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer

	lines *lineReader
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
// Nil arguments default to Stdin and Stdout.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer: w,
		lines:  newLineReader(r),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Output prints every content action on its own line.
func (h *TextHandler) Output(ctx context.Context, actions []domain.ActionRequest) (bool, error) {
	for _, act := range actions {
		if act.Type != domain.ActionRenderContent {
			continue
		}
		msg, ok := act.Payload.(string)
		if !ok {
			continue
		}
		output := strings.TrimRight(msg, "\n")
		if h.Renderer != nil {
			if rendered, err := h.Renderer(msg); err == nil {
				output = strings.TrimSpace(rendered)
			}
		}
		if _, err := fmt.Fprintln(h.Writer, output); err != nil {
			return false, err
		}
	}
	return needsInput(actions), nil
}

// Input prints the prompt verbatim (no newline) and blocks for one line.
func (h *TextHandler) Input(ctx context.Context, req domain.InputRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	if _, err := fmt.Fprint(h.Writer, prompt); err != nil {
		return "", err
	}

	return h.lines.ReadLine(ctx)
}
