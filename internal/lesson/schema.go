package lesson

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema describes the lesson document envelope. Per-variant payload
// shapes are enforced loosely on purpose: an activity with a recognized type
// but a malformed payload should fail the whole document, while extra
// authoring fields are tolerated.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"day":   map[string]any{"type": "integer", "minimum": 1},
		"title": map[string]any{"type": "string"},
		"intro": map[string]any{"type": "string"},
		"activities": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type":         map[string]any{"type": "string"},
					"instructions": map[string]any{"type": "string"},
					"questions": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"prompt":  map[string]any{"type": "string"},
								"answer":  map[string]any{"type": "string"},
								"answers": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
								"options": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							},
							"required": []any{"prompt"},
						},
					},
					"pairs": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "object"},
					},
					"items": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"word":     map[string]any{"type": "string"},
								"say":      map[string]any{"type": "string"},
								"sentence": map[string]any{"type": "string"},
							},
							"required": []any{"word"},
						},
					},
				},
				"required": []any{"type"},
			},
		},
	},
	"required": []any{"day", "title", "activities"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks raw lesson JSON against the document schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := documentSchemaCompiled()
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func documentSchemaCompiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lesson.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
