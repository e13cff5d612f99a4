package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/logging"
	"github.com/hupe1980/agentrelay/memory"
	"github.com/hupe1980/agentrelay/metrics"
	"github.com/hupe1980/agentrelay/tool"
)

// Options configures an agent.
type Options struct {
	// Description overrides the generated "Agent <name>" description.
	Description string
	// Logger receives dispatch logs (defaults to NoOpLogger).
	Logger logging.Logger
	// Metrics receives dispatch observations (defaults to NoopRecorder).
	Metrics metrics.Recorder
}

// BaseAgent implements the command protocol shared by every agent: it owns a
// MemoryStore and a tool registry and answers messages via Run. Embed it in
// variants that add behavior in front of the base dispatch.
type BaseAgent struct {
	info        core.AgentInfo
	description string
	memory      *memory.InMemoryStore
	tools       *tool.Registry
	logger      logging.Logger
	metrics     metrics.Recorder
}

// NewBaseAgent constructs an agent named name with an empty memory store and
// tool registry. It panics if name is empty.
func NewBaseAgent(name string, optFns ...func(o *Options)) BaseAgent {
	return newBaseAgent(name, "agent", optFns...)
}

func newBaseAgent(name, kind string, optFns ...func(o *Options)) BaseAgent {
	if name == "" {
		panic("agent: name must not be empty")
	}

	opts := Options{
		Description: fmt.Sprintf("Agent %s", name),
		Logger:      logging.NoOpLogger{},
		Metrics:     metrics.NoopRecorder{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	if opts.Metrics == nil {
		opts.Metrics = metrics.NoopRecorder{}
	}

	return BaseAgent{
		info:        core.AgentInfo{Name: name, Type: kind},
		description: opts.Description,
		memory:      memory.NewInMemoryStore(),
		tools:       tool.NewRegistry(),
		logger:      opts.Logger,
		metrics:     opts.Metrics,
	}
}

// Name returns the agent's fixed name.
func (b *BaseAgent) Name() string { return b.info.Name }

// Info returns the agent's identity.
func (b *BaseAgent) Info() core.AgentInfo { return b.info }

// Description returns a human-readable description of this agent.
func (b *BaseAgent) Description() string { return b.description }

// Memory returns the agent's private key/value store.
func (b *BaseAgent) Memory() core.MemoryStore { return b.memory }

// AddTool registers t, replacing any tool already registered under its name.
func (b *BaseAgent) AddTool(t tool.Tool) { b.tools.Add(t) }

// Tool looks up a registered tool by name.
func (b *BaseAgent) Tool(name string) (tool.Tool, bool) { return b.tools.Get(name) }

// Tools returns the registered tool names in sorted order.
func (b *BaseAgent) Tools() []string { return b.tools.Names() }

// Run answers message using the command protocol. Failures are returned as
// error Results; Run does not panic on malformed input or failing tools.
func (b *BaseAgent) Run(ctx context.Context, message string) core.Result {
	if ctx == nil {
		ctx = context.Background()
	}

	res := b.dispatch(ctx, message)
	b.metrics.ObserveDispatch(b.info.Name, res.Kind())

	return res
}

func (b *BaseAgent) dispatch(ctx context.Context, message string) core.Result {
	invocationID, _ := core.InvocationIDFromContext(ctx)

	cmd, isTool, err := ParseCommand(message)
	if !isTool {
		b.logger.Debug("agent.run.response", "agent", b.info.Name, "invocation_id", invocationID)
		return core.NewResponse(b.info.Name, "Received message: "+message)
	}

	if err != nil {
		b.logger.Warn("agent.run.malformed_command", "agent", b.info.Name, "invocation_id", invocationID, "error", err.Error())
		return core.NewErrorResult(core.NewMalformedCommandError(err))
	}

	t, found := b.tools.Get(cmd.Tool)
	if !found {
		b.logger.Warn("agent.run.unknown_tool", "agent", b.info.Name, "invocation_id", invocationID, "tool", cmd.Tool)
		return core.NewErrorResult(core.NewUnknownToolError(cmd.Tool))
	}

	value, err := b.callTool(ctx, t, cmd.Args)
	if err != nil {
		return core.NewErrorResult(core.NewToolExecutionError(err))
	}

	return core.NewToolResult(b.info.Name, cmd.Tool, value)
}

// toolCallLogger is implemented by loggers that record tool executions in a
// dedicated format (logging.RelayLogger).
type toolCallLogger interface {
	LogToolCall(tool string, dur time.Duration, success bool, err error)
}

// callTool invokes t, converting a panic inside the tool into an error.
func (b *BaseAgent) callTool(ctx context.Context, t tool.Tool, args map[string]any) (value any, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("tool %s panicked: %w", t.Name(), core.PanicError(r))
		}

		dur := time.Since(start)
		b.metrics.ObserveToolCall(b.info.Name, t.Name(), err, dur)

		if tl, ok := b.logger.(toolCallLogger); ok {
			tl.LogToolCall(t.Name(), dur, err == nil, err)
		} else if err != nil {
			b.logger.Warn("agent.tool.failed", "agent", b.info.Name, "tool", t.Name(), "error", err.Error())
		}
	}()

	tc := core.NewToolContext(ctx, b.info, t.Name(), b.logger)

	return t.Call(tc, args)
}

var _ core.Agent = (*BaseAgent)(nil)
