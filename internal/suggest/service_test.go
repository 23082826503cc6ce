package suggest

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dverbin/phrasal/internal/lesson"
	"github.com/dverbin/phrasal/internal/llm"
)

func validMultipleChoiceJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Ordering Coffee",
		"description": "Pick the right way to ask for a coffee.",
		"question": {"text": "Hoe vra jy vir koffie?", "translation": "How do you ask for coffee?"},
		"options": [
			{"text": "Een koffie, asseblief", "translation": "One coffee, please", "is_correct": true},
			{"text": "Totsiens", "translation": "Goodbye", "is_correct": false},
			{"text": "Baie dankie", "translation": "Thank you very much", "is_correct": false}
		],
		"difficulty": "beginner",
		"time_estimate": 2
	}`)
}

func consume(t *testing.T, svc *Service) Suggestion {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if out, ok := svc.Consume(); ok {
			return out
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no suggestion within deadline")
	return Suggestion{}
}

func TestService_SuggestsMultipleChoice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validMultipleChoiceJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{
		Type:        lesson.TypeMultipleChoice,
		LessonTitle: "Cafe Afrikaans",
		Level:       "beginner",
	})

	out := consume(t, svc)
	if out.Err != nil {
		t.Fatalf("suggestion error: %v", out.Err)
	}

	a := out.Activity
	if a.ID == "" {
		t.Error("expected a fresh activity ID")
	}
	if a.Type != lesson.TypeMultipleChoice {
		t.Errorf("type = %q", a.Type)
	}
	if a.Title != "Ordering Coffee" {
		t.Errorf("title = %q", a.Title)
	}
	if a.Question.Text != "Hoe vra jy vir koffie?" {
		t.Errorf("question = %q", a.Question.Text)
	}

	opts := a.Options()
	if len(opts) != 3 {
		t.Fatalf("options = %d, want 3", len(opts))
	}
	if !opts[0].IsCorrect || opts[1].IsCorrect || opts[2].IsCorrect {
		t.Error("expected exactly the first option to be correct")
	}
	for i, o := range opts {
		if o.ID == "" {
			t.Errorf("option %d has no ID", i)
		}
	}
}

func TestService_SuggestsFillInBlanks(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"title": "Morning Greetings",
		"description": "Fill in the missing word.",
		"question": {"text": "Goeie {more}, hoe gaan dit?", "translation": "Good morning, how are you?"},
		"word_blocks": ["more", "naand", "middag"],
		"difficulty": "beginner",
		"time_estimate": 1
	}`)})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{Type: lesson.TypeFillInBlanks})
	out := consume(t, svc)
	if out.Err != nil {
		t.Fatalf("suggestion error: %v", out.Err)
	}
	if got := out.Activity.WordBlocks(); len(got) != 3 {
		t.Errorf("word blocks = %v", got)
	}
}

func TestService_RejectsTooFewOptions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"title": "Broken",
		"description": "x",
		"question": {"text": "x", "translation": "x"},
		"options": [{"text": "only", "translation": "only", "is_correct": true}],
		"difficulty": "beginner",
		"time_estimate": 1
	}`)})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{Type: lesson.TypeMultipleChoice})
	out := consume(t, svc)
	if out.Err == nil {
		t.Fatal("expected error for single-option suggestion")
	}
}

func TestService_SurfacesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{Type: lesson.TypeDialogue})
	out := consume(t, svc)

	var unavail *llm.ErrProviderUnavailable
	if !errors.As(out.Err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", out.Err)
	}
}

func TestService_ConsumeClearsPending(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validMultipleChoiceJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{Type: lesson.TypeMultipleChoice})
	consume(t, svc)

	if _, ok := svc.Consume(); ok {
		t.Error("second Consume should return nothing")
	}
}

func TestPromptMentionsExistingTitles(t *testing.T) {
	msg := buildSuggestUserMessage(Input{
		Type:           lesson.TypeOrdering,
		LessonTitle:    "Travel",
		ExistingTitles: []string{"At the Airport"},
	})
	if want := "At the Airport"; !strings.Contains(msg, want) {
		t.Errorf("prompt missing %q:\n%s", want, msg)
	}
	if !strings.Contains(msg, string(lesson.TypeOrdering)) {
		t.Error("prompt missing activity type")
	}
}
