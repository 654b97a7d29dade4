package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/primer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Output(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf)

	actions := []domain.ActionRequest{
		{Type: domain.ActionRenderContent, Payload: "Counting to 5:\nCount: 1\n"},
		{Type: domain.ActionRenderContent, Payload: 42},
		{Type: domain.ActionRequestInput, Payload: domain.InputRequest{Prompt: "? "}},
	}

	needsInput, err := handler.Output(context.Background(), actions)
	require.NoError(t, err)
	assert.True(t, needsInput)
	assert.Equal(t, "Counting to 5:\nCount: 1\n", outBuf.String())
}

func TestTextHandler_OutputRenderer(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf, WithTextHandlerRenderer(func(s string) (string, error) {
		return "\n  Rendered: " + s + "\n\n", nil
	}))

	needsInput, err := handler.Output(context.Background(), []domain.ActionRequest{
		{Type: domain.ActionRenderContent, Payload: "Hello World"},
	})
	require.NoError(t, err)
	assert.False(t, needsInput)
	assert.Equal(t, "Rendered: Hello World\n", outBuf.String())
}

func TestTextHandler_Input(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("  blue  \r\nsecond\n"), outBuf)

	val, err := handler.Input(context.Background(), domain.InputRequest{Prompt: "What's your favorite color? "})
	require.NoError(t, err)
	assert.Equal(t, "  blue  ", val, "only the line terminator is stripped")
	assert.Equal(t, "What's your favorite color? ", outBuf.String())

	val, err = handler.Input(context.Background(), domain.InputRequest{})
	require.NoError(t, err)
	assert.Equal(t, "second", val)
	assert.True(t, strings.HasSuffix(outBuf.String(), DefaultPrompt))
}

func TestTextHandler_InputEmptyLine(t *testing.T) {
	handler := NewTextHandler(strings.NewReader("\n"), io.Discard)

	val, err := handler.Input(context.Background(), domain.InputRequest{Prompt: "? "})
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestTextHandler_InputEOF(t *testing.T) {
	t.Run("partial line is accepted", func(t *testing.T) {
		handler := NewTextHandler(strings.NewReader("green"), io.Discard)
		val, err := handler.Input(context.Background(), domain.InputRequest{Prompt: "? "})
		require.NoError(t, err)
		assert.Equal(t, "green", val)
	})

	t.Run("closed stream", func(t *testing.T) {
		handler := NewTextHandler(strings.NewReader(""), io.Discard)
		_, err := handler.Input(context.Background(), domain.InputRequest{Prompt: "? "})
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestTextHandler_InputCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(pr, outBuf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := handler.Input(ctx, domain.InputRequest{Prompt: "? "})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outBuf.String(), "no prompt once the context is done")
}
