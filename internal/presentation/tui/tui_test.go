package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner_PlainWriter(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "no escape codes on a non-terminal writer")
	assert.Contains(t, out, "|_|")
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer()
	require.NoError(t, err)

	out, err := render("**Grade: A**")
	require.NoError(t, err)
	assert.Contains(t, out, "Grade: A")
}
