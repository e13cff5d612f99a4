package tool

import (
	"errors"
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"

	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/internal/util"
)

// FunctionTool exposes a typed Go function as a Tool.
//
// Responsibilities:
//   - Reflects a JSON schema from the argument struct T (json tags name the
//     keyword arguments; fields without omitempty are required)
//   - Validates the supplied arguments against that schema
//   - Binds the arguments into a T, rejecting keys T does not declare
//   - Normalizes error handling so callers receive *ToolError with consistent codes:
//     VALIDATION_ERROR  -> schema / argument mismatch
//     EXECUTION_ERROR   -> underlying function returned an error (non-ToolError)
//     (custom codes preserved if the function returns *ToolError directly)
//
// A FunctionTool has no mutable state after construction and is safe for
// concurrent use.
type FunctionTool[T any] struct {
	name        string
	description string
	schema      *jsonschema.Schema
	fn          func(toolCtx *core.ToolContext, args T) (any, error)
}

// NewFunctionTool constructs a FunctionTool whose parameters are derived from T.
//
// Example:
//
//	type SumArgs struct {
//	  A float64 `json:"a" jsonschema:"description=First addend"`
//	  B float64 `json:"b" jsonschema:"description=Second addend"`
//	}
//
//	sumTool := NewFunctionTool("calculate_sum", "Calculate the sum of two numbers",
//	  func(tc *core.ToolContext, args SumArgs) (any, error) {
//	    return args.A + args.B, nil
//	  },
//	)
func NewFunctionTool[T any](
	name, description string,
	fn func(toolCtx *core.ToolContext, args T) (any, error),
) *FunctionTool[T] {
	var zero T
	return &FunctionTool[T]{
		name:        name,
		description: description,
		schema:      util.CreateSchema(zero),
		fn:          fn,
	}
}

// Name returns the unique tool name used for routing.
func (t *FunctionTool[T]) Name() string { return t.name }

// Description returns the short natural language description.
func (t *FunctionTool[T]) Description() string { return t.description }

// Parameters returns the JSON schema describing expected arguments.
func (t *FunctionTool[T]) Parameters() map[string]any { return util.SchemaMap(t.schema) }

// Call validates args, binds them into T and invokes the wrapped function.
//
// Logging Fields:
//
//	tool: tool name
//	agent: calling agent
//	duration_ms: execution time in milliseconds
func (t *FunctionTool[T]) Call(toolCtx *core.ToolContext, args map[string]any) (any, error) {
	logger := toolCtx.Logger()
	start := time.Now()

	logger.Debug("tool.call.start", "tool", t.name, "agent", toolCtx.AgentName())

	if args == nil {
		args = map[string]any{}
	}

	if err := util.ValidateParameters(args, t.schema); err != nil {
		logger.Warn("tool.call.validation_failed", "tool", t.name, "error", err.Error())

		return nil, &ToolError{
			Tool:    t.name,
			Message: fmt.Sprintf("parameter validation failed: %v", err),
			Code:    CodeValidation,
			Details: err,
		}
	}

	bound, err := bindArgs[T](args)
	if err != nil {
		logger.Warn("tool.call.validation_failed", "tool", t.name, "error", err.Error())

		return nil, &ToolError{
			Tool:    t.name,
			Message: fmt.Sprintf("argument binding failed: %v", err),
			Code:    CodeValidation,
			Details: err,
		}
	}

	result, err := t.fn(toolCtx, bound)
	if err != nil {
		var toolErr *ToolError
		if errors.As(err, &toolErr) {
			logger.Warn("tool.call.error", "tool", t.name, "error", toolErr.Message)

			return nil, toolErr
		}

		logger.Warn("tool.call.error", "tool", t.name, "error", err.Error())

		return nil, &ToolError{
			Tool:    t.name,
			Message: err.Error(),
			Code:    CodeExecution,
			Details: err,
		}
	}

	logger.Debug("tool.call.success", "tool", t.name, "duration_ms", time.Since(start).Milliseconds())

	return result, nil
}

// bindArgs decodes keyword arguments into T using the json tag names.
// Keys not declared by T are rejected.
func bindArgs[T any](args map[string]any) (T, error) {
	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &out,
		TagName:     "json",
		ErrorUnused: true,
	})
	if err != nil {
		return out, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return out, err
	}
	return out, nil
}
