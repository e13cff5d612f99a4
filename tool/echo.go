package tool

import "github.com/hupe1980/agentrelay/core"

// EchoToolName is the registry name of the echo tool.
const EchoToolName = "echo_tool"

// EchoArgs are the keyword arguments accepted by the echo tool. Text holds
// the decoded payload value as is: a string, number, boolean or nil.
type EchoArgs struct {
	Text any `json:"text" jsonschema:"description=Value to repeat,oneof_type=string;number;boolean;null"`
}

// NewEchoTool returns a tool that repeats its input unchanged:
// {"text": v} -> {"echo": v}.
func NewEchoTool() Tool {
	return NewFunctionTool(EchoToolName, "Repeats input text", func(_ *core.ToolContext, args EchoArgs) (any, error) {
		return map[string]any{"echo": args.Text}, nil
	})
}
