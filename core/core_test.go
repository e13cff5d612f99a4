package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Kinds(t *testing.T) {
	tr := NewToolResult("worker", "echo_tool", map[string]any{"echo": "x"})
	assert.Equal(t, KindTool, tr.Kind())
	assert.False(t, tr.IsError())

	rr := NewResponse("worker", "Received message: hi")
	assert.Equal(t, KindResponse, rr.Kind())

	er := NewErrorResult(NewUnknownToolError("nope"))
	assert.Equal(t, KindError, er.Kind())
	assert.True(t, er.IsError())
	assert.Equal(t, UnknownTool, er.ErrorKind())
	assert.Equal(t, "Tool 'nope' not found", er.Error)
}

func TestResult_Map(t *testing.T) {
	assert.Equal(t,
		map[string]any{"from": "worker", "tool": "echo_tool", "result": map[string]any{"echo": "x"}},
		NewToolResult("worker", "echo_tool", map[string]any{"echo": "x"}).Map(),
	)
	assert.Equal(t,
		map[string]any{"from": "supervisor", "response": "Received message: hi"},
		NewResponse("supervisor", "Received message: hi").Map(),
	)
	assert.Equal(t,
		map[string]any{"error": "Tool 'x' not found"},
		NewErrorResult(NewUnknownToolError("x")).Map(),
	)
}

func TestResult_JSON(t *testing.T) {
	b, err := json.Marshal(NewErrorResult(NewUnknownToolError("x")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Tool 'x' not found"}`, string(b))

	b, err = json.Marshal(NewResponse("worker", "Received message: hi"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"worker","response":"Received message: hi"}`, string(b))
}

func TestError_Messages(t *testing.T) {
	assert.Equal(t,
		"Agent 'nope' not found. Available: ['supervisor', 'worker']",
		NewUnknownAgentError("nope", []string{"supervisor", "worker"}).Error(),
	)
	assert.Equal(t, "Tool execution failed: bad", NewMalformedCommandError(errors.New("bad")).Error())
	assert.Equal(t, "Tool execution failed: boom", NewToolExecutionError(errors.New("boom")).Error())
	assert.Equal(t, "Agent.run() failed: oops", NewAgentRunError(errors.New("oops")).Error())
}

func TestError_IsAndAs(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("wrapped: %w", NewToolExecutionError(cause))

	assert.ErrorIs(t, err, ErrToolExecution)
	assert.NotErrorIs(t, err, ErrUnknownTool)
	assert.ErrorIs(t, err, cause)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ToolExecutionFailure, e.Kind)
}

func TestPanicError(t *testing.T) {
	base := errors.New("x")
	assert.Same(t, base, PanicError(base))
	assert.EqualError(t, PanicError("boom"), "boom")
}

func TestInvocationID(t *testing.T) {
	_, ok := InvocationIDFromContext(context.Background())
	assert.False(t, ok)

	id := NewID()
	assert.Len(t, id, 36)

	ctx := WithInvocationID(context.Background(), id)
	got, ok := InvocationIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestToolContext(t *testing.T) {
	ctx := WithInvocationID(context.Background(), "inv-1")
	tc := NewToolContext(ctx, AgentInfo{Name: "worker", Type: "worker"}, "echo_tool", nil)

	assert.Equal(t, "worker", tc.AgentName())
	assert.Equal(t, "worker", tc.AgentType())
	assert.Equal(t, "echo_tool", tc.ToolName())
	assert.Equal(t, "inv-1", tc.InvocationID())
	assert.NotNil(t, tc.Logger())
	assert.Equal(t, ctx, tc.Context())
}
