package core

import "errors"

// ResultKind identifies which variant of the Result union is populated.
type ResultKind int

const (
	// KindResponse is a default (non-tool) acknowledgement.
	KindResponse ResultKind = iota
	// KindTool is a successful tool invocation.
	KindTool
	// KindError is a failure result.
	KindError
)

func (k ResultKind) String() string {
	switch k {
	case KindTool:
		return "tool"
	case KindError:
		return "error"
	default:
		return "response"
	}
}

// Result is the value returned by Agent.Run and Session.Send. Exactly one of
// three shapes is populated:
//
//	{error}                 failure
//	{from, tool, result}    successful tool invocation
//	{from, response}        default response
type Result struct {
	From     string `json:"from,omitempty"`
	Tool     string `json:"tool,omitempty"`
	Result   any    `json:"result,omitempty"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`

	// Err holds the typed cause of an error result.
	Err error `json:"-"`
}

// NewToolResult builds a successful tool invocation result.
func NewToolResult(from, tool string, value any) Result {
	return Result{From: from, Tool: tool, Result: value}
}

// NewResponse builds a default response result.
func NewResponse(from, text string) Result {
	return Result{From: from, Response: text}
}

// NewErrorResult builds a failure result from err.
func NewErrorResult(err error) Result {
	if err == nil {
		err = NewAgentRunError(nil)
	}
	return Result{Error: err.Error(), Err: err}
}

// IsError reports whether r is a failure result.
func (r Result) IsError() bool { return r.Error != "" || r.Err != nil }

// Kind returns the populated variant.
func (r Result) Kind() ResultKind {
	switch {
	case r.IsError():
		return KindError
	case r.Tool != "":
		return KindTool
	default:
		return KindResponse
	}
}

// ErrorKind returns the typed error kind of a failure result, or "" when r is
// not an error or carries an untyped cause.
func (r Result) ErrorKind() ErrorKind {
	var e *Error
	if errors.As(r.Err, &e) {
		return e.Kind
	}
	return ""
}

// Map renders r as a plain mapping containing only the keys of its variant.
func (r Result) Map() map[string]any {
	switch r.Kind() {
	case KindError:
		msg := r.Error
		if msg == "" {
			msg = r.Err.Error()
		}
		return map[string]any{"error": msg}
	case KindTool:
		return map[string]any{"from": r.From, "tool": r.Tool, "result": r.Result}
	default:
		return map[string]any{"from": r.From, "response": r.Response}
	}
}
