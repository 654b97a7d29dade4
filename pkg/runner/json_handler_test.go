package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/primer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONHandler_Output(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewJSONHandler(strings.NewReader(""), outBuf)

	needsInput, err := handler.Output(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, needsInput)
	assert.Empty(t, outBuf.String())

	needsInput, err = handler.Output(context.Background(), []domain.ActionRequest{
		{Type: domain.ActionRequestInput, Payload: domain.InputRequest{Type: domain.InputText, Prompt: "Color? ", SaveTo: "color"}},
	})
	require.NoError(t, err)
	assert.True(t, needsInput)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(outBuf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, domain.ActionRequestInput, decoded[0]["type"])
	payload := decoded[0]["payload"].(map[string]any)
	assert.Equal(t, "Color? ", payload["prompt"])
	assert.Equal(t, "color", payload["save_to"])
}

func TestJSONHandler_Input(t *testing.T) {
	handler := NewJSONHandler(strings.NewReader("\"blue\"\nplain text\n"), &bytes.Buffer{})

	val, err := handler.Input(context.Background(), domain.InputRequest{})
	require.NoError(t, err)
	assert.Equal(t, "blue", val)

	val, err = handler.Input(context.Background(), domain.InputRequest{})
	require.NoError(t, err)
	assert.Equal(t, "plain text", val)
}
