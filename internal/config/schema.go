package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// configSchema is the JSON Schema every scenario document must
// satisfy before it is decoded into a Config.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string"},
    "label": {"type": "string"},
    "repetitions": {"type": "integer", "minimum": 1},
    "metrics": {"type": "string"},
    "sink": {"type": "string", "enum": ["stdout", "debug", "log"]},
    "targets": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string"},
          "work": {
            "type": "object",
            "additionalProperties": false,
            "properties": {
              "kind": {"type": "string", "enum": ["sleep", "allocate", "churn"]},
              "duration": {"type": "string"},
              "count": {"type": "integer", "minimum": 0},
              "size": {"type": "integer", "minimum": 0},
              "rounds": {"type": "integer", "minimum": 0}
            },
            "required": ["kind"]
          },
          "value": {},
          "valueFile": {"type": "string"},
          "path": {"type": "string"}
        }
      }
    }
  }
}`

// ValidateDocument checks a raw scenario document against the schema
// before decoding. YAML documents are normalized to JSON first so one
// schema covers both formats.
func ValidateDocument(data []byte, path string) error {
	doc := data
	if strings.ToLower(filepath.Ext(path)) != ".json" {
		var parsed any
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
		normalized, err := json.Marshal(parsed)
		if err != nil {
			return fmt.Errorf("failed to normalize config: %w", err)
		}
		doc = normalized
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(configSchema)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	var document any
	if err := json.Unmarshal(doc, &document); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(document); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			errs := &ValidationErrors{}
			collectSchemaErrors(validationErr, errs)
			return errs
		}
		return err
	}

	return nil
}

// collectSchemaErrors flattens the nested cause tree into the flat
// validation list, keeping the instance path of each failure.
func collectSchemaErrors(err *jsonschema.ValidationError, errs *ValidationErrors) {
	if err.Message != "" && len(err.Causes) == 0 {
		errs.Add(err.InstanceLocation, err.Message)
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, errs)
	}
}
