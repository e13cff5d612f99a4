package testutil

import (
	"context"

	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/memory"
)

// StubAgent is a core.Agent whose Run behavior is supplied by the test.
// A nil RunFunc echoes the message back as a response.
type StubAgent struct {
	AgentName string
	RunFunc   func(ctx context.Context, message string) core.Result

	mem *memory.InMemoryStore
}

// NewStubAgent creates a stub named name.
func NewStubAgent(name string, run func(ctx context.Context, message string) core.Result) *StubAgent {
	return &StubAgent{AgentName: name, RunFunc: run, mem: memory.NewInMemoryStore()}
}

// NewPanicAgent creates a stub that panics with v on every Run.
func NewPanicAgent(name string, v any) *StubAgent {
	return NewStubAgent(name, func(context.Context, string) core.Result { panic(v) })
}

// Name implements core.Agent.
func (a *StubAgent) Name() string { return a.AgentName }

// Description implements core.Agent.
func (a *StubAgent) Description() string { return "stub " + a.AgentName }

// Memory implements core.Agent.
func (a *StubAgent) Memory() core.MemoryStore {
	if a.mem == nil {
		a.mem = memory.NewInMemoryStore()
	}
	return a.mem
}

// Tools implements core.Agent.
func (a *StubAgent) Tools() []string { return nil }

// Run implements core.Agent.
func (a *StubAgent) Run(ctx context.Context, message string) core.Result {
	if a.RunFunc == nil {
		return core.NewResponse(a.AgentName, message)
	}
	return a.RunFunc(ctx, message)
}

var _ core.Agent = (*StubAgent)(nil)
