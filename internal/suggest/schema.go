package suggest

import "github.com/dverbin/phrasal/internal/llm"

var phraseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text": map[string]any{
			"type":        "string",
			"description": "Target-language text",
		},
		"translation": map[string]any{
			"type":        "string",
			"description": "Translation into the learner's language",
		},
	},
	"required":             []any{"text", "translation"},
	"additionalProperties": false,
}

// ActivitySchema defines the JSON schema for activity suggestion. It is
// a superset across activity types; the per-type instructions steer
// which arrays get filled.
var ActivitySchema = &llm.Schema{
	Name:        "activity-draft",
	Description: "One quiz activity draft for a language lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short activity title (3-8 words)",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One sentence telling the learner what to do",
			},
			"question": phraseSchema,
			"options": map[string]any{
				"type":        "array",
				"description": "Multiple-choice options; exactly one has is_correct true",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":        map[string]any{"type": "string"},
						"translation": map[string]any{"type": "string"},
						"is_correct":  map[string]any{"type": "boolean"},
					},
					"required":             []any{"text", "translation", "is_correct"},
					"additionalProperties": false,
				},
			},
			"items": map[string]any{
				"type":        "array",
				"description": "Ordering/dialogue items in correct order",
				"items":       phraseSchema,
			},
			"pairs": map[string]any{
				"type":        "array",
				"description": "Match-image pairs",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":        map[string]any{"type": "string"},
						"translation": map[string]any{"type": "string"},
						"image": map[string]any{
							"type":        "string",
							"description": "Short image description",
						},
					},
					"required":             []any{"text", "translation", "image"},
					"additionalProperties": false,
				},
			},
			"word_blocks": map[string]any{
				"type":        "array",
				"description": "Fill-in-blanks word pool: correct words plus distractors",
				"items":       map[string]any{"type": "string"},
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"time_estimate": map[string]any{
				"type":        "integer",
				"description": "Estimated minutes to complete (1-5)",
			},
		},
		"required":             []any{"title", "description", "question", "difficulty", "time_estimate"},
		"additionalProperties": false,
	},
}
