package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStreams(input string) (Streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Streams{In: strings.NewReader(input), Out: &out, Err: &errOut}, &out, &errOut
}

func TestExecute_Text(t *testing.T) {
	streams, out, errOut := newStreams("green\n")

	require.NoError(t, Execute(context.Background(), RunOptions{}, streams))

	assert.True(t, strings.HasPrefix(out.String(), "Basic Information:\nName: Alice\n"))
	assert.Contains(t, out.String(), "What's your favorite color? Nice choice! green is a great color.\n")
	assert.True(t, strings.HasSuffix(out.String(), "Program completed successfully!\n"))
	assert.Empty(t, errOut.String())
}

func TestExecute_RichWithoutTerminalFallsBackToText(t *testing.T) {
	streams, out, _ := newStreams("red\n")

	require.NoError(t, Execute(context.Background(), RunOptions{Rich: true}, streams))
	assert.Contains(t, out.String(), "Nice choice! red is a great color.\n")
}

func TestExecute_JSON(t *testing.T) {
	streams, out, _ := newStreams("\"teal\"\n")

	require.NoError(t, Execute(context.Background(), RunOptions{JSON: true}, streams))

	text := out.String()
	assert.Contains(t, text, `"REQUEST_INPUT"`)
	assert.Contains(t, text, "Nice choice! teal is a great color.")
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		assert.True(t, strings.HasPrefix(line, "["), "line %q is not a JSON array", line)
	}
}

func TestExecute_JSONAndRichConflict(t *testing.T) {
	streams, _, _ := newStreams("")
	err := Execute(context.Background(), RunOptions{JSON: true, Rich: true}, streams)
	assert.Error(t, err)
}

func TestExecute_BadLogLevel(t *testing.T) {
	streams, _, _ := newStreams("")
	err := Execute(context.Background(), RunOptions{LogLevel: "loud"}, streams)
	assert.Error(t, err)
}

func TestExecute_EOF(t *testing.T) {
	streams, out, _ := newStreams("")

	err := Execute(context.Background(), RunOptions{}, streams)
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))
	assert.True(t, strings.HasSuffix(out.String(), "What's your favorite color? "))
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	streams, _, errOut := newStreams("blue\n")

	require.NoError(t, Execute(ctx, RunOptions{}, streams))
	assert.Contains(t, errOut.String(), "Interrupted at 'start' node.")
}

func TestExecute_DebugLogsToErr(t *testing.T) {
	streams, out, errOut := newStreams("blue\n")

	require.NoError(t, Execute(context.Background(), RunOptions{Debug: true}, streams))
	assert.Contains(t, errOut.String(), "Enter Node")
	assert.Contains(t, errOut.String(), "node_id=calculate_grade")
	assert.NotContains(t, out.String(), "Enter Node")
}

func TestExecute_MetricsAndBanner(t *testing.T) {
	streams, out, errOut := newStreams("blue\n")

	require.NoError(t, Execute(context.Background(), RunOptions{Metrics: true, Banner: true}, streams))
	assert.Contains(t, errOut.String(), "primer_inputs_total 1")
	assert.Contains(t, errOut.String(), `primer_logic_calls_total{function="calculate_grade",status="ok"} 1`)
	assert.Contains(t, errOut.String(), "|_|")
	assert.True(t, strings.HasPrefix(out.String(), "Basic Information:"))
}

func TestWriteGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGraph(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "graph TD\n"))
	assert.Contains(t, buf.String(), "ask_color")
}

func TestWriteInspect(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInspect(&buf, false))
	assert.Contains(t, buf.String(), "ID")
	assert.Contains(t, buf.String(), "ask_color")
	assert.Contains(t, buf.String(), "question")

	buf.Reset()
	require.NoError(t, WriteInspect(&buf, true))
	assert.Contains(t, buf.String(), "nodes:")
	assert.Contains(t, buf.String(), "save_to: favoriteColor")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate())
}
