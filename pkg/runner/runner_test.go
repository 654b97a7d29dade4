package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/primer/internal/runtime"
	"github.com/aretw0/primer/pkg/domain"
	"github.com/aretw0/primer/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Output(ctx context.Context, actions []domain.ActionRequest) (bool, error) {
	args := m.Called(ctx, actions)
	return args.Bool(0), args.Error(1)
}

func (m *MockHandler) Input(ctx context.Context, req domain.InputRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func buildEngine(t *testing.T) (*runtime.Engine, *domain.State) {
	t.Helper()
	b := dsl.New()
	b.Add("start").Text("Hello {{ .name }}").Go("ask")
	b.Add("ask").Question("Color? ").SaveTo("color").Go("end")
	b.Add("end").Text("Got {{ .color }}.")
	loader, err := b.Build()
	require.NoError(t, err)

	eng := runtime.NewEngine(loader, runtime.DefaultInterpolator)
	state, err := eng.Start(context.Background(), map[string]any{"name": "Alice"})
	require.NoError(t, err)
	return eng, state
}

func TestRunner_TextEndToEnd(t *testing.T) {
	eng, state := buildEngine(t)
	out := &bytes.Buffer{}

	r := NewRunner(WithIO(strings.NewReader("blue\n"), out))
	final, err := r.Run(context.Background(), eng, state)
	require.NoError(t, err)

	assert.Equal(t, "Hello Alice\nColor? Got blue.\n", out.String())
	assert.True(t, final.Terminated)
	assert.Equal(t, "blue", final.Context["color"])
}

func TestRunner_MockHandler(t *testing.T) {
	eng, state := buildEngine(t)
	h := new(MockHandler)

	h.On("Output", mock.Anything, mock.MatchedBy(func(a []domain.ActionRequest) bool {
		return len(a) == 1 && a[0].Type == domain.ActionRenderContent
	})).Return(false, nil)
	h.On("Output", mock.Anything, mock.MatchedBy(func(a []domain.ActionRequest) bool {
		return len(a) == 1 && a[0].Type == domain.ActionRequestInput
	})).Return(true, nil).Once()
	h.On("Input", mock.Anything, domain.InputRequest{Type: domain.InputText, Prompt: "Color? ", SaveTo: "color"}).
		Return("red", nil).Once()

	r := NewRunner(WithInputHandler(h))
	final, err := r.Run(context.Background(), eng, state)
	require.NoError(t, err)
	assert.Equal(t, "red", final.Context["color"])
	h.AssertExpectations(t)
}

func TestRunner_InputClosed(t *testing.T) {
	eng, state := buildEngine(t)

	r := NewRunner(WithIO(strings.NewReader(""), io.Discard))
	final, err := r.Run(context.Background(), eng, state)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "ask", final.CurrentNodeID)
}

func TestRunner_HandlerErrors(t *testing.T) {
	eng, state := buildEngine(t)
	boom := errors.New("broken pipe")

	h := new(MockHandler)
	h.On("Output", mock.Anything, mock.Anything).Return(false, boom)

	_, err := NewRunner(WithInputHandler(h)).Run(context.Background(), eng, state)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "output error")
}

func TestRunner_Cancelled(t *testing.T) {
	eng, state := buildEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(WithIO(strings.NewReader("x\n"), io.Discard)).Run(ctx, eng, state)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_NilState(t *testing.T) {
	eng, _ := buildEngine(t)
	_, err := NewRunner().Run(context.Background(), eng, nil)
	assert.Error(t, err)
}
