package core

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a dispatch failure.
type ErrorKind string

const (
	// UnknownAgent: the requested agent name is not registered in the session.
	UnknownAgent ErrorKind = "UnknownAgent"
	// MalformedToolCommand: the text after "tool:" lacks a separating space or
	// the payload does not decode as an object literal.
	MalformedToolCommand ErrorKind = "MalformedToolCommand"
	// UnknownTool: the tool name is not registered on the target agent.
	UnknownTool ErrorKind = "UnknownTool"
	// ToolExecutionFailure: the tool failed, including argument mismatches.
	ToolExecutionFailure ErrorKind = "ToolExecutionFailure"
	// AgentRunFailure: a failure escaped Agent.Run without being converted.
	AgentRunFailure ErrorKind = "AgentRunFailure"
)

// Sentinels for errors.Is matching by kind.
var (
	ErrUnknownAgent         = &Error{Kind: UnknownAgent}
	ErrMalformedToolCommand = &Error{Kind: MalformedToolCommand}
	ErrUnknownTool          = &Error{Kind: UnknownTool}
	ErrToolExecution        = &Error{Kind: ToolExecutionFailure}
	ErrAgentRun             = &Error{Kind: AgentRunFailure}
)

// Error is the typed failure carried by error Results. Message is the exact
// text surfaced to callers in Result.Error.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches sentinel errors (no message) by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// NewUnknownAgentError reports a lookup miss listing the available names in
// the order given.
func NewUnknownAgentError(name string, available []string) *Error {
	quoted := make([]string, len(available))
	for i, n := range available {
		quoted[i] = fmt.Sprintf("'%s'", n)
	}
	return &Error{
		Kind:    UnknownAgent,
		Message: fmt.Sprintf("Agent '%s' not found. Available: [%s]", name, strings.Join(quoted, ", ")),
	}
}

// NewMalformedCommandError wraps a command split or payload decode failure.
func NewMalformedCommandError(cause error) *Error {
	return &Error{Kind: MalformedToolCommand, Message: "Tool execution failed: " + causeText(cause), Cause: cause}
}

// NewUnknownToolError reports a tool lookup miss on an agent.
func NewUnknownToolError(name string) *Error {
	return &Error{Kind: UnknownTool, Message: fmt.Sprintf("Tool '%s' not found", name)}
}

// NewToolExecutionError wraps an error returned (or panic raised) by a tool.
func NewToolExecutionError(cause error) *Error {
	return &Error{Kind: ToolExecutionFailure, Message: "Tool execution failed: " + causeText(cause), Cause: cause}
}

// NewAgentRunError wraps a failure that escaped an agent's Run.
func NewAgentRunError(cause error) *Error {
	return &Error{Kind: AgentRunFailure, Message: "Agent.run() failed: " + causeText(cause), Cause: cause}
}

func causeText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// PanicError converts a recovered panic value into an error.
func PanicError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}
