package authoring

import (
	"testing"
	"time"

	"github.com/dverbin/phrasal/internal/editor"
	"github.com/dverbin/phrasal/internal/lesson"
)

func activityFixture(title string) lesson.Activity {
	return lesson.Activity{
		ID:       lesson.NewID(),
		Type:     lesson.TypeDialogue,
		Title:    title,
		Question: lesson.MediaElement{ID: lesson.NewID(), Text: "Read the dialogue"},
		Body: lesson.Dialogue{Items: []lesson.MediaElement{
			{ID: lesson.NewID(), Text: "Zdravo"},
			{ID: lesson.NewID(), Text: "Zdravo!"},
		}},
	}
}

func TestResetLesson_AllocatesFreshLessonInSetup(t *testing.T) {
	s, eff := Reduce(NewState(), ResetLesson{})

	if s.View != ViewSetup {
		t.Errorf("view = %s, want setup", s.View)
	}
	if s.Lesson.ID == "" {
		t.Error("expected a fresh lesson ID")
	}
	if eff != EffectNone {
		t.Error("creating an empty lesson must not persist")
	}

	s2, _ := Reduce(NewState(), ResetLesson{})
	if s2.Lesson.ID == s.Lesson.ID {
		t.Error("two resets produced the same lesson ID")
	}
}

func TestViewTransitions(t *testing.T) {
	s, _ := Reduce(NewState(), ResetLesson{})

	s, _ = Reduce(s, ContinueToBuilder{})
	if s.View != ViewBuilder {
		t.Fatalf("view = %s, want builder", s.View)
	}

	s, _ = Reduce(s, BackToSetup{})
	if s.View != ViewSetup {
		t.Fatalf("view = %s, want setup", s.View)
	}

	s, _ = Reduce(s, BackToList{})
	if s.View != ViewList {
		t.Fatalf("view = %s, want list", s.View)
	}

	// Builder-only actions are ignored outside the builder.
	s, _ = Reduce(s, StartDraft{Type: lesson.TypeOrdering})
	if s.Editing() {
		t.Error("StartDraft must be ignored in the list view")
	}
}

func TestAddThenUpdate_PreservesID(t *testing.T) {
	s, _ := Reduce(NewState(), ResetLesson{})
	s, eff := Reduce(s, AddActivity{Activity: activityFixture("v1")})

	if eff != EffectPersist {
		t.Error("adding the first activity should persist")
	}
	if len(s.Lesson.Activities) != 1 {
		t.Fatalf("activities = %d, want 1", len(s.Lesson.Activities))
	}
	id := s.Lesson.Activities[0].ID

	updated := s.Lesson.Activities[0].Clone()
	updated.Title = "v2"
	s, _ = Reduce(s, UpdateActivity{Activity: updated})

	if s.Lesson.Activities[0].ID != id {
		t.Error("update changed the activity ID")
	}
	if s.Lesson.Activities[0].Title != "v2" {
		t.Errorf("title = %q, want the last update's payload", s.Lesson.Activities[0].Title)
	}
}

func TestDeleteActivity_UnknownIDIsNoop(t *testing.T) {
	s, _ := Reduce(NewState(), ResetLesson{})
	s, _ = Reduce(s, AddActivity{Activity: activityFixture("keep")})

	s2, eff := Reduce(s, DeleteActivity{ID: "no-such-id"})
	if len(s2.Lesson.Activities) != 1 {
		t.Error("delete of unknown ID changed the activity list")
	}
	if eff != EffectNone {
		t.Error("no-op delete must not persist")
	}
}

func TestUpdatedAt_StampedOnMutationNotNavigation(t *testing.T) {
	s, _ := Reduce(NewState(), ResetLesson{})
	before := s.Lesson.UpdatedAt

	time.Sleep(2 * time.Millisecond)
	s, _ = Reduce(s, ContinueToBuilder{})
	if !s.Lesson.UpdatedAt.Equal(before) {
		t.Error("pure view change stamped UpdatedAt")
	}

	s, _ = Reduce(s, SetField{Field: FieldTitle, Value: "Basics"})
	if !s.Lesson.UpdatedAt.After(before) {
		t.Error("field mutation did not advance UpdatedAt")
	}
	if s.Lesson.Title != "Basics" {
		t.Errorf("title = %q", s.Lesson.Title)
	}
}

func TestPersistEffect_OnlyWithActivities(t *testing.T) {
	s, _ := Reduce(NewState(), ResetLesson{})

	s, eff := Reduce(s, SetField{Field: FieldTitle, Value: "no activities yet"})
	if eff != EffectNone {
		t.Error("lesson without activities must not persist")
	}

	s, _ = Reduce(s, AddActivity{Activity: activityFixture("a")})
	s, eff = Reduce(s, SetField{Field: FieldDescription, Value: "now it saves"})
	if eff != EffectPersist {
		t.Error("every mutation should persist once an activity exists")
	}
	if !s.Lesson.IsSaved {
		t.Error("IsSaved should be set once persisted")
	}
}

func TestDraftSubState_SaveAppendsNewActivity(t *testing.T) {
	s, _ := Reduce(NewState(), ResetLesson{})
	s, _ = Reduce(s, ContinueToBuilder{})
	s, _ = Reduce(s, StartDraft{Type: lesson.TypeMultipleChoice})

	if !s.Editing() {
		t.Fatal("StartDraft did not enter the draft sub-state")
	}

	s, _ = Reduce(s, EditDraft{Op: editor.SetTitle{Value: "Pick one"}})
	s, eff := Reduce(s, SaveDraft{})

	if s.Editing() {
		t.Error("SaveDraft did not leave the draft sub-state")
	}
	if len(s.Lesson.Activities) != 1 || s.Lesson.Activities[0].Title != "Pick one" {
		t.Fatalf("activities = %+v", s.Lesson.Activities)
	}
	if eff != EffectPersist {
		t.Error("saving the first activity should persist")
	}
}

func TestDraftSubState_EditExistingReplacesByID(t *testing.T) {
	s, _ := Reduce(NewState(), ResetLesson{})
	s, _ = Reduce(s, AddActivity{Activity: activityFixture("original")})
	s, _ = Reduce(s, ContinueToBuilder{})
	id := s.Lesson.Activities[0].ID

	s, _ = Reduce(s, EditActivity{ID: id})
	s, _ = Reduce(s, EditDraft{Op: editor.SetTitle{Value: "edited"}})
	s, _ = Reduce(s, SaveDraft{})

	if len(s.Lesson.Activities) != 1 {
		t.Fatalf("activities = %d, want replacement not append", len(s.Lesson.Activities))
	}
	if s.Lesson.Activities[0].ID != id || s.Lesson.Activities[0].Title != "edited" {
		t.Errorf("activity = %+v", s.Lesson.Activities[0])
	}
}

func TestDraftSubState_CancelDiscardsEdits(t *testing.T) {
	s, _ := Reduce(NewState(), ResetLesson{})
	s, _ = Reduce(s, ContinueToBuilder{})
	s, _ = Reduce(s, StartDraft{Type: lesson.TypeOrdering})
	s, _ = Reduce(s, CancelDraft{})

	if s.Editing() || len(s.Lesson.Activities) != 0 {
		t.Error("cancel must discard the draft without touching the lesson")
	}
}

func TestReorderActivities_CallerSuppliedOrder(t *testing.T) {
	s, _ := Reduce(NewState(), ResetLesson{})
	s, _ = Reduce(s, AddActivity{Activity: activityFixture("first")})
	s, _ = Reduce(s, AddActivity{Activity: activityFixture("second")})

	reversed := []lesson.Activity{s.Lesson.Activities[1], s.Lesson.Activities[0]}
	s, eff := Reduce(s, ReorderActivities{Activities: reversed})

	if s.Lesson.Activities[0].Title != "second" {
		t.Error("reorder did not apply the caller-supplied order")
	}
	if eff != EffectPersist {
		t.Error("reorder should persist")
	}
}
