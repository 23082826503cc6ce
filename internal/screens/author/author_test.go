package author

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dverbin/phrasal/internal/authoring"
	"github.com/dverbin/phrasal/internal/lesson"
)

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func savedLesson() lesson.Lesson {
	l := lesson.New()
	l.Title = "Greetings"
	l.Level = "beginner"
	l.IsSaved = true
	l.Activities = []lesson.Activity{{
		ID:       lesson.NewID(),
		Type:     lesson.TypeMultipleChoice,
		Title:    "Pick one",
		Question: lesson.MediaElement{ID: lesson.NewID(), Text: "q"},
		Body: lesson.MultipleChoice{Options: []lesson.Option{
			{MediaElement: lesson.MediaElement{ID: lesson.NewID(), Text: "a"}, IsCorrect: true},
			{MediaElement: lesson.MediaElement{ID: lesson.NewID(), Text: "b"}},
		}},
	}}
	return l
}

func TestAuthorScreen_StartNewOpensSetup(t *testing.T) {
	s := New(nil, nil, nil, StartNew)
	s.Init()

	if s.state.View != authoring.ViewSetup {
		t.Fatalf("View = %q, want setup", s.state.View)
	}
	if s.Title() != "Lesson Setup" {
		t.Errorf("Title = %q", s.Title())
	}
	if !s.InterceptEsc() {
		t.Error("setup view should intercept Esc for internal navigation")
	}
}

func TestAuthorScreen_ListDoesNotInterceptEsc(t *testing.T) {
	s := New(nil, nil, nil, StartList)
	if s.InterceptEsc() {
		t.Error("the lesson list should let Esc pop to home")
	}
}

func TestAuthorScreen_SetupToBuilder(t *testing.T) {
	s := NewForLesson(nil, nil, nil, savedLesson())
	s.Init()

	// Enter advances through the fields and commits on the last one.
	for range formFieldCount {
		s.Update(keyCode(tea.KeyEnter))
	}

	if s.state.View != authoring.ViewBuilder {
		t.Fatalf("View = %q after committing setup, want builder", s.state.View)
	}
	if !strings.Contains(s.View(80, 24), "1 activities") {
		t.Error("builder should show the activity count")
	}
}

func toBuilder(t *testing.T, l lesson.Lesson) *AuthorScreen {
	t.Helper()
	s := NewForLesson(nil, nil, nil, l)
	s.Init()
	for range formFieldCount {
		s.Update(keyCode(tea.KeyEnter))
	}
	if s.state.View != authoring.ViewBuilder {
		t.Fatalf("View = %q, want builder", s.state.View)
	}
	return s
}

func TestAuthorScreen_NewActivityThroughTypeMenu(t *testing.T) {
	s := toBuilder(t, savedLesson())

	s.Update(keyRune('n'))
	if !s.typeMenu {
		t.Fatal("n should open the activity type menu")
	}

	s.Update(keyCode(tea.KeyDown)) // fill-in-blanks
	s.Update(keyCode(tea.KeyEnter))

	if !s.state.Editing() {
		t.Fatal("choosing a type should open the draft editor")
	}
	if s.state.Draft.Activity.Type != lesson.TypeFillInBlanks {
		t.Errorf("draft type = %q", s.state.Draft.Activity.Type)
	}
	if len(s.rows) == 0 {
		t.Error("draft editor should build editable rows")
	}
}

func TestAuthorScreen_SaveRejectsInvalidDraft(t *testing.T) {
	s := toBuilder(t, savedLesson())
	s.Update(keyRune('n'))
	s.Update(keyCode(tea.KeyEnter)) // multiple-choice

	// A fresh draft has no title or question yet.
	s.Update(keyRune('s'))
	if !s.state.Editing() {
		t.Fatal("an invalid draft must stay open")
	}
	if len(s.errs) == 0 {
		t.Error("expected validation messages")
	}
	if len(s.state.Lesson.Activities) != 1 {
		t.Errorf("activities = %d, invalid draft must not be appended", len(s.state.Lesson.Activities))
	}
}

func TestAuthorScreen_CancelDraftKeepsLesson(t *testing.T) {
	s := toBuilder(t, savedLesson())
	s.Update(keyRune('n'))
	s.Update(keyCode(tea.KeyEnter))
	s.Update(keyCode(tea.KeyEscape))

	if s.state.Editing() {
		t.Fatal("Esc should discard the draft")
	}
	if len(s.state.Lesson.Activities) != 1 {
		t.Errorf("activities = %d after cancel, want the original 1", len(s.state.Lesson.Activities))
	}
}

func TestAuthorScreen_DeleteActivityNeedsConfirmation(t *testing.T) {
	s := toBuilder(t, savedLesson())

	s.Update(keyRune('d'))
	if !s.confirmAct {
		t.Fatal("d should ask for confirmation")
	}

	s.Update(keyRune('n')) // keep
	if len(s.state.Lesson.Activities) != 1 {
		t.Fatal("declining must keep the activity")
	}

	s.Update(keyRune('d'))
	s.Update(keyRune('y'))
	if len(s.state.Lesson.Activities) != 0 {
		t.Errorf("activities = %d after confirmed delete, want 0", len(s.state.Lesson.Activities))
	}
}

func TestAuthorScreen_BuilderBackToSetup(t *testing.T) {
	s := toBuilder(t, savedLesson())
	s.Update(keyCode(tea.KeyEscape))

	if s.state.View != authoring.ViewSetup {
		t.Errorf("View = %q after Esc in builder, want setup", s.state.View)
	}
}
