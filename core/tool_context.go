package core

import (
	"context"

	"github.com/hupe1980/agentrelay/logging"
)

// ToolContext is the read-only surface handed to a tool invocation. It
// exposes identity and logging but no handle on the calling agent's memory or
// tool registry, so tools cannot mutate agent state.
type ToolContext struct {
	ctx          context.Context
	agent        AgentInfo
	toolName     string
	invocationID string
	logger       logging.Logger
}

// NewToolContext constructs a tool context for a single call of toolName by
// agent. A nil ctx is replaced by context.Background and a nil logger by a
// NoOpLogger.
func NewToolContext(ctx context.Context, agent AgentInfo, toolName string, logger logging.Logger) *ToolContext {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	invocationID, _ := InvocationIDFromContext(ctx)
	return &ToolContext{
		ctx:          ctx,
		agent:        agent,
		toolName:     toolName,
		invocationID: invocationID,
		logger:       logger,
	}
}

// Context returns the context associated with the tool invocation.
func (tc *ToolContext) Context() context.Context { return tc.ctx }

// AgentName returns the name of the agent invoking the tool.
func (tc *ToolContext) AgentName() string { return tc.agent.Name }

// AgentType returns the type of the agent invoking the tool.
func (tc *ToolContext) AgentType() string { return tc.agent.Type }

// ToolName returns the name the tool was invoked under.
func (tc *ToolContext) ToolName() string { return tc.toolName }

// InvocationID returns the id of the Send call this invocation belongs to, or
// "" when the agent was run directly.
func (tc *ToolContext) InvocationID() string { return tc.invocationID }

// Logger returns the logger associated with the tool invocation.
func (tc *ToolContext) Logger() logging.Logger { return tc.logger }
