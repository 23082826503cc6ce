package quiz

import (
	"testing"

	"github.com/dverbin/phrasal/internal/lesson"
)

func mcActivity(correct string, others ...string) lesson.Activity {
	opts := []lesson.Option{{MediaElement: lesson.MediaElement{ID: lesson.NewID(), Text: correct}, IsCorrect: true}}
	for _, o := range others {
		opts = append(opts, lesson.Option{MediaElement: lesson.MediaElement{ID: lesson.NewID(), Text: o}})
	}
	return lesson.Activity{
		ID:       lesson.NewID(),
		Type:     lesson.TypeMultipleChoice,
		Title:    "Pick one",
		Question: lesson.MediaElement{Text: "How do you say hello?"},
		Body:     lesson.MultipleChoice{Options: opts},
	}
}

func dialogueActivity() lesson.Activity {
	return lesson.Activity{
		ID:       lesson.NewID(),
		Type:     lesson.TypeDialogue,
		Title:    "Read along",
		Question: lesson.MediaElement{Text: "Read the dialogue"},
		Body: lesson.Dialogue{Items: []lesson.MediaElement{
			{Text: "Zdravo"}, {Text: "Zdravo!"},
		}},
	}
}

func blanksActivity() lesson.Activity {
	return lesson.Activity{
		ID:       lesson.NewID(),
		Type:     lesson.TypeFillInBlanks,
		Title:    "Fill it in",
		Question: lesson.MediaElement{Text: "Smeety Alex, o {nty}?"},
		Body:     lesson.FillInBlanks{WordBlocks: []string{"nty", "oty"}},
	}
}

func fourActivityLesson() lesson.Lesson {
	l := lesson.New()
	l.Title = "Basics"
	l.Activities = []lesson.Activity{
		mcActivity("Zdravo", "Hvala"),
		dialogueActivity(),
		blanksActivity(),
		dialogueActivity(),
	}
	return l
}

func TestTotalSteps(t *testing.T) {
	p := New(fourActivityLesson())
	if p.TotalSteps() != 5 {
		t.Fatalf("totalSteps = %d, want 5 (intro + 4 activities)", p.TotalSteps())
	}
}

func TestWalkToCompletion(t *testing.T) {
	p := New(fourActivityLesson())

	for i := 0; i < 5; i++ {
		if p.Done() {
			t.Fatalf("done after %d steps, too early", i)
		}
		// Fill in whatever the step needs before checking.
		if a := p.Current(); a != nil {
			switch a.Type {
			case lesson.TypeMultipleChoice:
				p.SelectAnswer("Zdravo")
			case lesson.TypeFillInBlanks:
				p.TapWord("nty")
			}
		}
		p.Check()
		if !p.Answered {
			t.Fatalf("step %d not answered after Check", p.Step)
		}
		p.Continue()
	}

	if !p.Done() || p.Step != p.TotalSteps() {
		t.Fatalf("step = %d, want terminal %d", p.Step, p.TotalSteps())
	}

	// Terminal state accepts no further actions.
	p.Check()
	p.Continue()
	if p.Step != p.TotalSteps() {
		t.Errorf("step = %d, continue past the end must be a no-op", p.Step)
	}
}

func TestIntroStep_TriviallyCorrect(t *testing.T) {
	p := New(fourActivityLesson())
	if p.Current() != nil {
		t.Fatal("step 0 should have no activity")
	}
	p.Check()
	if !p.Answered || !p.Correct {
		t.Error("intro check should be trivially correct")
	}
	if len(p.Results) != 0 {
		t.Error("intro must not record a step result")
	}
}

func TestContinueBeforeCheck_IsNoop(t *testing.T) {
	p := New(fourActivityLesson())
	p.Continue()
	if p.Step != 0 {
		t.Errorf("step = %d, continue before check must be refused", p.Step)
	}
}

func TestMultipleChoice_Evaluation(t *testing.T) {
	l := lesson.New()
	l.Activities = []lesson.Activity{mcActivity("Zdravo", "Hvala", "Molim")}

	p := New(l)
	p.Check() // intro
	p.Continue()

	if p.CanCheck() {
		t.Error("multiple-choice should not be checkable without a selection")
	}

	p.SelectAnswer("Hvala")
	p.Check()
	if p.Correct {
		t.Error("incorrect option evaluated as correct")
	}

	// selectAnswer after check has no effect.
	p.SelectAnswer("Zdravo")
	if p.Selected != "Hvala" {
		t.Error("selection changed after check")
	}
}

func TestMultipleChoice_CorrectSelection(t *testing.T) {
	l := lesson.New()
	l.Activities = []lesson.Activity{mcActivity("Zdravo", "Hvala")}

	p := New(l)
	p.Check()
	p.Continue()
	p.SelectAnswer("Zdravo")
	p.Check()

	if !p.Correct {
		t.Error("correct option evaluated as incorrect")
	}
	if len(p.Results) != 1 || !p.Results[0].Correct {
		t.Errorf("results = %+v", p.Results)
	}
}

func TestFillInBlanks_GatingAndEvaluation(t *testing.T) {
	l := lesson.New()
	l.Activities = []lesson.Activity{blanksActivity()}

	p := New(l)
	p.Check()
	p.Continue()

	if p.Slots == nil {
		t.Fatal("entering a fill-in-blanks step must initialize the slot state")
	}
	if p.CanCheck() {
		t.Error("check must be gated until all blanks are filled")
	}

	p.TapWord("oty")
	if !p.CanCheck() {
		t.Fatal("all blanks filled, check should be enabled")
	}
	p.Check()
	if p.Correct {
		t.Error("wrong word evaluated as correct")
	}

	// Taps after check are ignored.
	p.TapBlank(0)
	if _, filled := p.Slots.Filled[0]; !filled {
		t.Error("tap after check mutated the slots")
	}
}

func TestReadAndConfirmTypes_AlwaysCorrect(t *testing.T) {
	l := lesson.New()
	l.Activities = []lesson.Activity{dialogueActivity()}

	p := New(l)
	p.Check()
	p.Continue()

	if !p.CanCheck() {
		t.Fatal("dialogue steps need no input before check")
	}
	p.Check()
	if !p.Correct {
		t.Error("dialogue steps gate pacing, not correctness")
	}
}

func TestCorrectCount(t *testing.T) {
	l := lesson.New()
	l.Activities = []lesson.Activity{mcActivity("a", "b"), dialogueActivity()}

	p := New(l)
	p.Check()
	p.Continue()
	p.SelectAnswer("b")
	p.Check()
	p.Continue()
	p.Check()
	p.Continue()

	if got := p.CorrectCount(); got != 1 {
		t.Errorf("correctCount = %d, want 1", got)
	}
	if !p.Done() {
		t.Error("expected terminal state")
	}
}
