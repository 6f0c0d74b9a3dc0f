package workload

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Value shapes reported by ParseValue.
const (
	ValueObject = "object"
	ValueArray  = "array"
	ValueScalar = "scalar"
)

// ParseValue decodes a JSON literal into an evaluation value and
// classifies its shape. Objects decode to map[string]any, arrays to
// []any, scalars to their natural Go type.
func ParseValue(literal string) (any, string, error) {
	if !gjson.Valid(literal) {
		return nil, "", fmt.Errorf("invalid JSON value: %q", literal)
	}

	parsed := gjson.Parse(literal)
	shape := ValueScalar
	switch {
	case parsed.IsObject():
		shape = ValueObject
	case parsed.IsArray():
		shape = ValueArray
	}

	var value any
	if err := json.Unmarshal([]byte(literal), &value); err != nil {
		return nil, "", fmt.Errorf("decoding JSON value: %w", err)
	}

	return value, shape, nil
}

// Extract selects a sub-document from a JSON literal using a gjson
// path expression, for example "users.0.name" or "items.#". It
// returns the raw JSON of the selected value, suitable for ParseValue.
func Extract(literal string, path string) (string, error) {
	if !gjson.Valid(literal) {
		return "", fmt.Errorf("invalid JSON value: %q", literal)
	}
	if path == "" {
		return "", fmt.Errorf("empty path expression")
	}

	result := gjson.Get(literal, path)
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}

	return result.Raw, nil
}

// Describe summarizes a JSON literal for log lines.
func Describe(literal string) string {
	parsed := gjson.Parse(literal)
	switch {
	case parsed.IsObject():
		return fmt.Sprintf("object with %d keys", len(parsed.Map()))
	case parsed.IsArray():
		return fmt.Sprintf("array with %d elements", len(parsed.Array()))
	default:
		return "scalar " + parsed.Raw
	}
}
