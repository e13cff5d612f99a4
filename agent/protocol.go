package agent

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// ToolPrefix marks a message as a tool invocation.
const ToolPrefix = "tool:"

// ErrMissingPayload is returned when no space separates the tool name from
// the payload.
var ErrMissingPayload = errors.New(`malformed tool command: expected "tool:<name> <payload>"`)

// Command is a parsed tool invocation.
type Command struct {
	Tool    string
	Payload string
	Args    map[string]any
}

// DecodeError reports a payload that is not an object literal of primitive values.
type DecodeError struct {
	Msg string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid payload: %s: %v", e.Msg, e.Err)
	}
	return "invalid payload: " + e.Msg
}

// Unwrap returns the underlying decoder error.
func (e *DecodeError) Unwrap() error { return e.Err }

// ParseCommand recognizes a tool invocation. ok is false when message does
// not start with ToolPrefix. For tool invocations the remainder is split on
// the first space into tool name and payload and the payload is decoded.
func ParseCommand(message string) (cmd Command, ok bool, err error) {
	rest, found := strings.CutPrefix(message, ToolPrefix)
	if !found {
		return Command{}, false, nil
	}

	name, payload, found := strings.Cut(rest, " ")
	if !found {
		return Command{}, true, ErrMissingPayload
	}

	args, err := ParsePayload(payload)
	if err != nil {
		return Command{}, true, err
	}

	return Command{Tool: name, Payload: payload, Args: args}, true, nil
}

// ParsePayload decodes text as a JSON object whose values are strings,
// numbers, booleans or null. Nested objects and arrays are rejected, as is
// trailing data after the object.
func ParsePayload(text string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(text))

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &DecodeError{Msg: "not valid JSON", Err: err}
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Msg: "unexpected data after object"}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &DecodeError{Msg: fmt.Sprintf("expected an object, got %s", jsonKind(raw))}
	}

	for k, v := range obj {
		switch v.(type) {
		case nil, string, float64, bool:
		default:
			return nil, &DecodeError{Msg: fmt.Sprintf("value for %q must be a string, number, boolean or null, got %s", k, jsonKind(v))}
		}
	}

	return obj, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
