package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-word",
	Description: "A single word with a translation.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word":        map[string]any{"type": "string"},
			"translation": map[string]any{"type": "string"},
		},
		"required":             []any{"word", "translation"},
		"additionalProperties": false,
	},
}

func TestValidateResponseAcceptsConformingJSON(t *testing.T) {
	raw := json.RawMessage(`{"word":"goeiemore","translation":"good morning"}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	raw := json.RawMessage(`{"word":"goeiemore"}`)
	err := validateResponse(testSchema, raw)

	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"word":`)
	err := validateResponse(testSchema, raw)

	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should pass: %v", err)
	}
}
