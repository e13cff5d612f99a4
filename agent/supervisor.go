package agent

import (
	"context"
	"strings"

	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/tool"
)

// SupervisorName is the fixed name of the supervisor agent.
const SupervisorName = "supervisor"

// DelegateToken triggers delegation when it appears anywhere in a message
// sent to the supervisor (case-insensitive).
const DelegateToken = "delegate"

// SupervisorAgent forwards delegation requests to its worker and otherwise
// answers with the base dispatch.
type SupervisorAgent struct {
	BaseAgent
	worker *WorkerAgent
}

// NewSupervisorAgent constructs the supervisor bound to worker. It panics if
// worker is nil.
func NewSupervisorAgent(worker *WorkerAgent, optFns ...func(o *Options)) *SupervisorAgent {
	if worker == nil {
		panic("agent: supervisor requires a worker")
	}

	s := &SupervisorAgent{
		BaseAgent: newBaseAgent(SupervisorName, "supervisor", optFns...),
		worker:    worker,
	}
	s.AddTool(tool.NewEchoTool())

	return s
}

// Worker returns the delegation target.
func (s *SupervisorAgent) Worker() *WorkerAgent { return s.worker }

// Run forwards the task to the worker when message contains the delegate
// token and returns the worker's result unchanged. Other messages use the
// base dispatch under the supervisor's name.
func (s *SupervisorAgent) Run(ctx context.Context, message string) core.Result {
	if ctx == nil {
		ctx = context.Background()
	}

	if task, ok := DelegationTask(message); ok {
		invocationID, _ := core.InvocationIDFromContext(ctx)
		s.logger.Debug("agent.delegate", "agent", s.Name(), "to", s.worker.Name(), "invocation_id", invocationID)
		s.metrics.ObserveDelegation(s.Name(), s.worker.Name())

		return s.worker.Run(ctx, task)
	}

	return s.BaseAgent.Run(ctx, message)
}

// DelegationTask reports whether message requests delegation and returns the
// task to forward: message with the first occurrence of the delegate token
// (any letter case) removed and surrounding whitespace trimmed.
func DelegationTask(message string) (string, bool) {
	i := indexFold(message, DelegateToken)
	if i < 0 {
		return "", false
	}

	task := message[:i] + message[i+len(DelegateToken):]

	return strings.TrimSpace(task), true
}

// indexFold returns the byte index of the first ASCII case-insensitive match
// of the lowercase token in s, or -1.
func indexFold(s, token string) int {
	n := len(token)
	for i := 0; i+n <= len(s); i++ {
		match := true
		for j := 0; j < n; j++ {
			c := s[i+j]
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c != token[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

var (
	_ core.Agent = (*WorkerAgent)(nil)
	_ core.Agent = (*SupervisorAgent)(nil)
)
