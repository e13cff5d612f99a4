package util

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
)

// ValidationError represents parameter validation errors with detailed information.
type ValidationError struct {
	Field   string `json:"field"`   // Field that failed validation
	Value   any    `json:"value"`   // Value that was provided
	Message string `json:"message"` // Human-readable error message
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// CreateSchema reflects a JSON schema from a Go struct. Fields without
// `omitempty` in their json tag are required and no additional properties
// are allowed.
func CreateSchema(structType any) *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return r.Reflect(structType)
}

// SchemaMap renders a schema as a plain map for callers that expose
// parameters as map[string]any.
func SchemaMap(s *jsonschema.Schema) map[string]any {
	if s == nil {
		return map[string]any{"type": "object", "properties": map[string]any{}}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return map[string]any{"type": "object", "properties": map[string]any{}}
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any{"type": "object", "properties": map[string]any{}}
	}
	delete(out, "$schema")
	return out
}

// ValidateParameters checks params against the required fields, property
// types and additional-properties rule of schema.
func ValidateParameters(params map[string]any, schema *jsonschema.Schema) error {
	if schema == nil {
		return nil
	}

	required := make(map[string]bool, len(schema.Required))
	for _, fieldName := range schema.Required {
		required[fieldName] = true
		if _, exists := params[fieldName]; !exists {
			return &ValidationError{
				Field:   fieldName,
				Message: "required field is missing",
			}
		}
	}

	closed := isFalseSchema(schema.AdditionalProperties)
	for fieldName, value := range params {
		prop, exists := property(schema, fieldName)
		if !exists {
			if closed {
				return &ValidationError{
					Field:   fieldName,
					Value:   value,
					Message: "unexpected argument",
				}
			}
			continue
		}

		if value == nil && required[fieldName] && prop.Type != "" && prop.Type != "null" {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("expected type %s, got null", prop.Type),
			}
		}

		if !isValidType(value, prop.Type) {
			return &ValidationError{
				Field:   fieldName,
				Value:   value,
				Message: fmt.Sprintf("expected type %s, got %T", prop.Type, value),
			}
		}
	}

	return nil
}

func property(schema *jsonschema.Schema, name string) (*jsonschema.Schema, bool) {
	if schema.Properties == nil {
		return nil, false
	}
	prop, ok := schema.Properties.Get(name)
	if !ok || prop == nil {
		return nil, false
	}
	return prop, true
}

func isFalseSchema(s *jsonschema.Schema) bool {
	if s == nil {
		return false
	}
	return s == jsonschema.FalseSchema || s.Not == jsonschema.TrueSchema
}

// isValidType checks if a value is valid according to the expected JSON schema type.
func isValidType(value any, expectedType string) bool {
	if value == nil {
		return true // null satisfies optional fields
	}

	switch expectedType {
	case "string":
		_, ok := value.(string)
		return ok
	case "integer":
		switch v := value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		case float64: // JSON unmarshaling often produces float64 for numbers
			return v == float64(int64(v))
		}
		return false
	case "number":
		switch value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return true
		}
		return false
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "array":
		_, ok := value.([]any)
		return ok
	case "object":
		_, ok := value.(map[string]any)
		return ok
	default:
		return true // Unknown types are assumed valid
	}
}
