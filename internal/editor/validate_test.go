package editor

import (
	"testing"

	"github.com/dverbin/phrasal/internal/lesson"
)

func validBase(t lesson.ActivityType) Draft {
	d := New(t)
	d = Apply(d, SetTitle{Value: "Greetings"})
	d = Apply(d, SetMediaField{Target: TargetQuestion, Key: KeyText, Value: "How do you say hello?"})
	return d
}

func TestValidate_MissingTitleAndQuestion(t *testing.T) {
	d := New(lesson.TypeOrdering)
	d = Apply(d, SetMediaField{Target: TargetItems, Index: 0, Key: KeyText, Value: "a"})
	d = Apply(d, SetMediaField{Target: TargetItems, Index: 1, Key: KeyText, Value: "b"})

	errs := Validate(d.Activity)
	if len(errs) != 2 {
		t.Fatalf("errors = %v, want title + question", Messages(errs))
	}
	if errs[0].Message != "Title is required" || errs[1].Message != "Question text is required" {
		t.Errorf("messages = %v, wrong order or wording", Messages(errs))
	}
}

func TestValidate_WhitespaceOnlyTitleIsBlank(t *testing.T) {
	d := validBase(lesson.TypeDialogue)
	d = Apply(d, SetTitle{Value: "   "})

	errs := Validate(d.Activity)
	if len(errs) != 1 || errs[0].Message != "Title is required" {
		t.Errorf("errors = %v, want only the title error", Messages(errs))
	}
}

func TestValidate_MultipleChoiceRules(t *testing.T) {
	// One non-blank option, none marked correct: exactly two errors.
	d := validBase(lesson.TypeMultipleChoice)
	d = Apply(d, SetMediaField{Target: TargetOptions, Index: 0, Key: KeyText, Value: "Zdravo"})

	errs := Validate(d.Activity)
	if len(errs) != 2 {
		t.Fatalf("errors = %v, want exactly 2", Messages(errs))
	}
	if errs[0].Message != "At least 2 options with text are required" {
		t.Errorf("first = %q", errs[0].Message)
	}
	if errs[1].Message != "One option must be marked as correct" {
		t.Errorf("second = %q", errs[1].Message)
	}

	// Filling the second option and marking one correct clears both.
	d = Apply(d, SetMediaField{Target: TargetOptions, Index: 1, Key: KeyText, Value: "Hvala"})
	d = Apply(d, SetCorrectOption{Index: 0})
	if errs := Validate(d.Activity); len(errs) != 0 {
		t.Errorf("errors = %v, want none", Messages(errs))
	}
}

func TestValidate_FillInBlanksNeedsABlank(t *testing.T) {
	d := validBase(lesson.TypeFillInBlanks)

	errs := Validate(d.Activity)
	if len(errs) != 1 {
		t.Fatalf("errors = %v, want only the blanks error", Messages(errs))
	}
	if errs[0].Message != "Question text must contain at least one {blank}" {
		t.Errorf("message = %q", errs[0].Message)
	}

	d = Apply(d, SetMediaField{Target: TargetQuestion, Key: KeyText, Value: "Zdravo, kako {si}?"})
	if errs := Validate(d.Activity); len(errs) != 0 {
		t.Errorf("errors = %v, want none", Messages(errs))
	}
}

func TestValidate_MatchImageNeedsTwoPairs(t *testing.T) {
	d := validBase(lesson.TypeMatchImage)
	if errs := Validate(d.Activity); len(errs) != 0 {
		t.Errorf("default two pairs should validate, got %v", Messages(errs))
	}
}
