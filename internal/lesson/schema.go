package lesson

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the JSON Schema for an exported lesson document.
// It validates the envelope and the superset activity shape; type-specific
// rules (option counts, blank presence) belong to the editor validator,
// not the wire schema.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"formatVersion", "lesson"},
	"properties": map[string]any{
		"formatVersion": map[string]any{"type": "string"},
		"lesson": map[string]any{
			"type":     "object",
			"required": []any{"id", "title", "activities"},
			"properties": map[string]any{
				"id":          map[string]any{"type": "string", "minLength": 1},
				"title":       map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
				"level":       map[string]any{"type": "string"},
				"objectives":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"introParts":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"tags":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"activities": map[string]any{
					"type":  "array",
					"items": activitySchema,
				},
			},
		},
	},
}

var activitySchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "type", "title", "question"},
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"multiple-choice", "fill-in-blanks", "ordering", "dialogue", "match-image"},
		},
		"title":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"question":    mediaSchema,
		"options": map[string]any{
			"type":  "array",
			"items": optionSchema,
		},
		"items": map[string]any{
			"type":  "array",
			"items": mediaSchema,
		},
		"pairs": map[string]any{
			"type":  "array",
			"items": pairSchema,
		},
		"wordBlocks": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"", "beginner", "intermediate", "advanced"},
		},
		"timeEstimate": map[string]any{"type": "integer", "minimum": 0},
	},
}

var mediaSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string"},
		"text":        map[string]any{"type": "string"},
		"translation": map[string]any{"type": "string"},
		"audioRef":    map[string]any{"type": "string"},
		"audioUrl":    map[string]any{"type": "string"},
	},
}

var optionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string"},
		"text":        map[string]any{"type": "string"},
		"translation": map[string]any{"type": "string"},
		"audioRef":    map[string]any{"type": "string"},
		"audioUrl":    map[string]any{"type": "string"},
		"isCorrect":   map[string]any{"type": "boolean"},
	},
}

var pairSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string"},
		"text":        map[string]any{"type": "string"},
		"translation": map[string]any{"type": "string"},
		"audioRef":    map[string]any{"type": "string"},
		"audioUrl":    map[string]any{"type": "string"},
		"image":       map[string]any{"type": "string"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidateDocument checks raw bytes against the lesson document schema.
func ValidateDocument(data []byte) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = compileDocumentSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile document schema: %w", compileErr)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("document is not valid JSON: %w", err)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("document does not match lesson schema: %w", err)
	}
	return nil
}

func compileDocumentSchema() (*jsonschema.Schema, error) {
	// The compiler wants a parsed JSON value; round-trip through encoding/json
	// to strip Go-specific map types.
	raw, err := json.Marshal(documentSchema)
	if err != nil {
		return nil, err
	}
	var def any
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	const url = "schema://lesson-document.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
