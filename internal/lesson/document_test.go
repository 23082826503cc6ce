package lesson

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestActivityWireShape_MultipleChoice(t *testing.T) {
	a := Activity{
		ID:       "a1",
		Type:     TypeMultipleChoice,
		Title:    "Greetings",
		Question: MediaElement{ID: "q1", Text: "How do you greet someone?"},
		Body: MultipleChoice{Options: []Option{
			{MediaElement: MediaElement{ID: "o1", Text: "Zdravo"}, IsCorrect: true},
			{MediaElement: MediaElement{ID: "o2", Text: "Hvala"}},
		}},
	}

	raw, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}

	if doc["type"] != "multiple-choice" {
		t.Errorf("type = %v, want multiple-choice", doc["type"])
	}
	opts, ok := doc["options"].([]any)
	if !ok || len(opts) != 2 {
		t.Fatalf("options = %v, want 2 entries", doc["options"])
	}
	first := opts[0].(map[string]any)
	if first["isCorrect"] != true {
		t.Errorf("options[0].isCorrect = %v, want true", first["isCorrect"])
	}
	if _, present := doc["items"]; present {
		t.Error("items should be omitted for a multiple-choice document")
	}
}

func TestActivityUnmarshal_IgnoresIrrelevantFields(t *testing.T) {
	// A superset document produced by another tool: type says ordering but
	// options/wordBlocks are also present. Consumers must ignore them.
	raw := `{
		"id": "a2", "type": "ordering", "title": "Word order",
		"question": {"id": "q", "text": "Put the words in order"},
		"items": [{"id": "i1", "text": "ja"}, {"id": "i2", "text": "sam"}],
		"options": [{"id": "x", "text": "stray", "isCorrect": true}],
		"wordBlocks": ["stray"],
		"difficulty": "beginner", "timeEstimate": 2
	}`

	var a Activity
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	body, ok := a.Body.(Ordering)
	if !ok {
		t.Fatalf("Body = %T, want Ordering", a.Body)
	}
	if len(body.Items) != 2 || body.Items[0].Text != "ja" {
		t.Errorf("items = %v, want the two document items", body.Items)
	}
	if a.Options() != nil {
		t.Error("Options() should be nil for an ordering activity")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	l := New()
	l.Title = "Serbian basics"
	l.Level = "beginner"
	l.Objectives = []string{"Greet someone"}
	l.Activities = []Activity{{
		ID:       NewID(),
		Type:     TypeFillInBlanks,
		Title:    "Blank it",
		Question: MediaElement{ID: NewID(), Text: "Zdravo, kako {si}?"},
		Body:     FillInBlanks{WordBlocks: []string{"si", "sam"}},
	}}

	data, err := Export(l)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	got, err := Import(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got.ID != l.ID || got.Title != l.Title {
		t.Errorf("round trip lost metadata: got %q/%q", got.ID, got.Title)
	}
	if len(got.Activities) != 1 || got.Activities[0].Type != TypeFillInBlanks {
		t.Fatalf("round trip lost activities: %+v", got.Activities)
	}
	if wb := got.Activities[0].WordBlocks(); len(wb) != 2 || wb[0] != "si" {
		t.Errorf("wordBlocks = %v, want [si sam]", wb)
	}
}

func TestImport_RejectsWrongMajorVersion(t *testing.T) {
	l := New()
	l.Title = "x"
	data, err := Export(l)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	bad := strings.Replace(string(data), FormatVersion, "v2.0.0", 1)

	if _, err := Import([]byte(bad)); err == nil {
		t.Fatal("expected import of a v2 document to fail")
	}
}

func TestImport_RejectsUnknownActivityType(t *testing.T) {
	doc := `{"formatVersion": "` + FormatVersion + `", "lesson": {
		"id": "l1", "title": "x",
		"activities": [{"id": "a", "type": "essay", "title": "t", "question": {"text": "q"}}]
	}}`

	if _, err := Import([]byte(doc)); err == nil {
		t.Fatal("expected schema validation to reject an unknown activity type")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
