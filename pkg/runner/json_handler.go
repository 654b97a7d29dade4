package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/primer/pkg/domain"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Each Output call emits one line holding the action list; each input line is either a
// JSON string or raw text.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder

	lines *lineReader
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
		lines:   newLineReader(r),
	}
}

func (h *JSONHandler) Output(ctx context.Context, actions []domain.ActionRequest) (bool, error) {
	if len(actions) == 0 {
		return false, nil
	}
	if err := h.Encoder.Encode(actions); err != nil {
		return false, err
	}
	return needsInput(actions), nil
}

// Input reads one line. The prompt already travelled inside the REQUEST_INPUT action.
func (h *JSONHandler) Input(ctx context.Context, req domain.InputRequest) (string, error) {
	text, err := h.lines.ReadLine(ctx)
	if err != nil {
		return "", err
	}

	var val string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &val); err == nil {
		return val, nil
	}

	// Fallback: plain text
	return text, nil
}
