package session

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentrelay/agent"
	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/internal/testutil"
	"github.com/hupe1980/agentrelay/metrics"
)

func TestNew_Registry(t *testing.T) {
	s := New()

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, []string{"supervisor", "worker"}, s.Agents())

	sup, ok := s.Agent("supervisor")
	require.True(t, ok)
	assert.Same(t, s.Supervisor(), sup)

	w, ok := s.Agent("worker")
	require.True(t, ok)
	assert.Same(t, s.Worker(), w)
	assert.Same(t, s.Worker(), s.Supervisor().Worker())

	assert.Equal(t, []string{"echo_tool"}, sup.Tools())
	assert.Equal(t, []string{"echo_tool"}, w.Tools())
}

func TestAgents_ReturnsCopy(t *testing.T) {
	s := New()
	names := s.Agents()
	names[0] = "mutated"

	assert.Equal(t, []string{"supervisor", "worker"}, s.Agents())
}

func TestSend_UnknownAgent(t *testing.T) {
	res := New().Send(context.Background(), "nope", "hi")

	require.True(t, res.IsError())
	assert.Equal(t, "Agent 'nope' not found. Available: ['supervisor', 'worker']", res.Error)
	assert.Equal(t, core.UnknownAgent, res.ErrorKind())
	assert.ErrorIs(t, res.Err, core.ErrUnknownAgent)
	assert.Equal(t, map[string]any{"error": res.Error}, res.Map())
}

func TestSend_AgentNamesAreCaseSensitive(t *testing.T) {
	res := New().Send(context.Background(), "Worker", "hi")
	assert.Equal(t, core.UnknownAgent, res.ErrorKind())
}

func TestSend_WorkerEcho(t *testing.T) {
	res := New().Send(context.Background(), "worker", `tool:echo_tool {"text": "hello"}`)

	require.False(t, res.IsError(), res.Error)
	assert.Equal(t, map[string]any{
		"from":   "worker",
		"tool":   "echo_tool",
		"result": map[string]any{"echo": "hello"},
	}, res.Map())
}

func TestSend_DefaultResponse(t *testing.T) {
	s := New()

	for _, name := range s.Agents() {
		res := s.Send(context.Background(), name, "hello there")
		assert.Equal(t, core.NewResponse(name, "Received message: hello there"), res)
	}
}

func TestSend_DelegationMatchesDirectSend(t *testing.T) {
	s := New()
	msg := `please delegate tool:echo_tool {"text":"x"}`

	task, ok := agent.DelegationTask(msg)
	require.True(t, ok)

	delegated := s.Send(context.Background(), "supervisor", msg)
	direct := s.Send(context.Background(), "worker", task)

	assert.Equal(t, direct, delegated)
	assert.Equal(t, "worker", delegated.From)
	assert.Equal(t, `Received message: please  tool:echo_tool {"text":"x"}`, delegated.Response)
}

func TestSend_DelegationToolCall(t *testing.T) {
	s := New()

	delegated := s.Send(context.Background(), "supervisor", `delegate tool:echo_tool {"text":"x"}`)
	direct := s.Send(context.Background(), "worker", `tool:echo_tool {"text":"x"}`)

	require.False(t, delegated.IsError(), delegated.Error)
	assert.Equal(t, direct, delegated)
	assert.Equal(t, core.NewToolResult("worker", "echo_tool", map[string]any{"echo": "x"}), delegated)
}

func TestSend_SupervisorWithoutDelegation(t *testing.T) {
	res := New().Send(context.Background(), "supervisor", `tool:echo_tool {"text":"y"}`)
	assert.Equal(t, core.NewToolResult("supervisor", "echo_tool", map[string]any{"echo": "y"}), res)
}

func TestSend_UnknownTool(t *testing.T) {
	res := New().Send(context.Background(), "worker", "tool:unknown_tool {}")

	assert.Equal(t, map[string]any{"error": "Tool 'unknown_tool' not found"}, res.Map())
	assert.Equal(t, core.UnknownTool, res.ErrorKind())
}

func TestSend_NotJSON(t *testing.T) {
	res := New().Send(context.Background(), "worker", "tool:echo_tool not-json")

	require.True(t, res.IsError())
	assert.Equal(t, core.MalformedToolCommand, res.ErrorKind())
	assert.Contains(t, res.Error, "Tool execution failed:")
}

func TestSend_MissingArgument(t *testing.T) {
	res := New().Send(context.Background(), "worker", "tool:echo_tool {}")

	require.True(t, res.IsError())
	assert.Equal(t, core.ToolExecutionFailure, res.ErrorKind())
}

func TestSend_Idempotent(t *testing.T) {
	s := New()

	for _, msg := range []string{
		"hello",
		`tool:echo_tool {"text":"same"}`,
		"tool:echo_tool not-json",
		`delegate tool:echo_tool {"text":"z"}`,
	} {
		first := s.Send(context.Background(), "supervisor", msg)
		second := s.Send(context.Background(), "supervisor", msg)
		assert.Equal(t, first, second, msg)
	}
}

func TestSessions_AreIsolated(t *testing.T) {
	a := New()
	b := New()

	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotSame(t, a.Worker(), b.Worker())

	a.Worker().Memory().Set("k", "v")

	_, ok := b.Worker().Memory().Get("k")
	assert.False(t, ok)
}

func TestSend_RecoversAgentPanic(t *testing.T) {
	s := newSession("test", testutil.NewPanicAgent("boom", "kaboom"))

	var res core.Result
	require.NotPanics(t, func() {
		res = s.Send(context.Background(), "boom", "hi")
	})

	assert.Equal(t, "Agent.run() failed: kaboom", res.Error)
	assert.Equal(t, core.AgentRunFailure, res.ErrorKind())
}

func TestSend_RecoversErrorPanic(t *testing.T) {
	cause := errors.New("bad state")
	s := newSession("test", testutil.NewPanicAgent("boom", cause))

	res := s.Send(context.Background(), "boom", "hi")

	assert.ErrorIs(t, res.Err, cause)
	assert.ErrorIs(t, res.Err, core.ErrAgentRun)
}

func TestSend_InvocationID(t *testing.T) {
	var seen []string

	stub := testutil.NewStubAgent("stub", func(ctx context.Context, message string) core.Result {
		id, ok := core.InvocationIDFromContext(ctx)
		require.True(t, ok)
		seen = append(seen, id)
		return core.NewResponse("stub", message)
	})
	s := newSession("test", stub)

	s.Send(context.Background(), "stub", "a")
	s.Send(context.Background(), "stub", "b")
	require.Len(t, seen, 2)
	assert.NotEqual(t, seen[0], seen[1])

	s.Send(core.WithInvocationID(context.Background(), "fixed"), "stub", "c")
	assert.Equal(t, "fixed", seen[2])
}

func TestSend_NilContext(t *testing.T) {
	//nolint:staticcheck // nil context is tolerated at the boundary
	res := New().Send(nil, "worker", "hi")
	assert.Equal(t, "Received message: hi", res.Response)
}

func TestNewSession_DuplicateNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		newSession("dup", testutil.NewStubAgent("a", nil), testutil.NewStubAgent("a", nil))
	})
}

func TestNew_LoggerCarriesSessionID(t *testing.T) {
	capture, logger := testutil.NewLogCapture()
	s := New(func(o *Options) { o.Logger = logger })

	s.Send(context.Background(), "supervisor", `delegate tool:echo_tool {"text":"x"}`)

	entry, ok := capture.Find("agent.delegate")
	require.True(t, ok, capture.Messages())
	assert.Equal(t, s.ID(), entry["session_id"])
	assert.NotEmpty(t, entry["invocation_id"])

	_, ok = capture.Find("Tool execution completed")
	assert.True(t, ok)
}

func TestNew_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPrometheusRecorder(reg, "")
	require.NoError(t, err)

	s := New(func(o *Options) { o.Metrics = rec })

	s.Send(context.Background(), "supervisor", `delegate tool:echo_tool {"text":"x"}`)
	s.Send(context.Background(), "worker", "tool:unknown_tool {}")
	s.Send(context.Background(), "nope", "hi")

	assert.Equal(t, 1.0, promtestutil.ToFloat64(rec.Delegations.WithLabelValues("supervisor", "worker")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(rec.Dispatches.WithLabelValues("worker", "tool")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(rec.Dispatches.WithLabelValues("worker", "error")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(rec.ToolCalls.WithLabelValues("worker", "echo_tool", "success")))
}
