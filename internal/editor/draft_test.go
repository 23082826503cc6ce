package editor

import (
	"testing"

	"github.com/dverbin/phrasal/internal/lesson"
)

func TestApply_NeverMutatesPreviousDraft(t *testing.T) {
	before := New(lesson.TypeMultipleChoice)
	after := Apply(before, SetMediaField{Target: TargetOptions, Index: 0, Key: KeyText, Value: "changed"})

	if before.Activity.Options()[0].Text != "" {
		t.Error("previous draft was mutated by Apply")
	}
	if after.Activity.Options()[0].Text != "changed" {
		t.Error("edit did not land on the new draft")
	}
}

func TestSetCorrectOption_SingleSelect(t *testing.T) {
	d := New(lesson.TypeMultipleChoice)
	d = Apply(d, AddOption{})
	d = Apply(d, SetCorrectOption{Index: 2})
	d = Apply(d, SetCorrectOption{Index: 0})

	opts := d.Activity.Options()
	for i, o := range opts {
		want := i == 0
		if o.IsCorrect != want {
			t.Errorf("option %d IsCorrect = %v, want %v", i, o.IsCorrect, want)
		}
	}
}

func TestRemoveOption_RefusesBelowMinimum(t *testing.T) {
	d := New(lesson.TypeMultipleChoice) // default two options
	got := Apply(d, RemoveOption{Index: 0})

	if len(got.Activity.Options()) != 2 {
		t.Errorf("options = %d, removal below minimum must be a no-op", len(got.Activity.Options()))
	}

	d = Apply(d, AddOption{})
	got = Apply(d, RemoveOption{Index: 2})
	if len(got.Activity.Options()) != 2 {
		t.Errorf("options = %d, want removal to succeed above minimum", len(got.Activity.Options()))
	}
}

func TestRemoveItem_KeepsAtLeastOne(t *testing.T) {
	d := New(lesson.TypeDialogue) // default two items
	d = Apply(d, RemoveItem{Index: 0})
	if len(d.Activity.Items()) != 1 {
		t.Fatalf("items = %d, want 1", len(d.Activity.Items()))
	}
	d = Apply(d, RemoveItem{Index: 0})
	if len(d.Activity.Items()) != 1 {
		t.Errorf("items = %d, removing the last item must be refused", len(d.Activity.Items()))
	}
}

func TestChangeType_ResetsShapePreservingIDAndTitle(t *testing.T) {
	d := New(lesson.TypeMultipleChoice)
	d = Apply(d, SetTitle{Value: "Keep me"})
	d = Apply(d, SetMediaField{Target: TargetQuestion, Key: KeyText, Value: "drop me"})
	id := d.Activity.ID

	d = Apply(d, ChangeType{Type: lesson.TypeMatchImage})

	if d.Activity.ID != id {
		t.Error("ChangeType must preserve the activity ID")
	}
	if d.Activity.Title != "Keep me" {
		t.Error("ChangeType must preserve an already-set title")
	}
	if d.Activity.Question.Text != "" {
		t.Error("ChangeType must reset the question")
	}
	if len(d.Activity.Pairs()) != 2 {
		t.Errorf("pairs = %d, want the default match-image shape", len(d.Activity.Pairs()))
	}
}

func TestSetAudio_LandsOnTargetElement(t *testing.T) {
	d := New(lesson.TypeOrdering)
	d = Apply(d, SetAudio{Target: TargetItems, Index: 1, Name: "hello.mp3", URL: "file:///media/hello.mp3"})

	it := d.Activity.Items()[1]
	if it.AudioRef != "hello.mp3" || it.AudioURL != "file:///media/hello.mp3" {
		t.Errorf("audio = %q/%q, attachment did not land", it.AudioRef, it.AudioURL)
	}
}

func TestSetWordBlocks_OnlyForFillInBlanks(t *testing.T) {
	d := New(lesson.TypeFillInBlanks)
	d = Apply(d, SetWordBlocks{Words: []string{"si", "sam"}})
	if wb := d.Activity.WordBlocks(); len(wb) != 2 {
		t.Fatalf("wordBlocks = %v", wb)
	}

	other := New(lesson.TypeDialogue)
	other = Apply(other, SetWordBlocks{Words: []string{"x"}})
	if other.Activity.WordBlocks() != nil {
		t.Error("SetWordBlocks must be a no-op for other types")
	}
}
