package player

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dverbin/phrasal/internal/lesson"
)

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testLesson has one activity of each checked type plus a dialogue study
// step. The blanks pool holds a single word so the shuffle cannot
// reorder it.
func testLesson() lesson.Lesson {
	l := lesson.New()
	l.Title = "Greetings"
	l.Level = "beginner"
	l.Objectives = []string{"Greet someone"}
	l.Activities = []lesson.Activity{
		{
			ID:       lesson.NewID(),
			Type:     lesson.TypeMultipleChoice,
			Title:    "Pick the greeting",
			Question: lesson.MediaElement{ID: lesson.NewID(), Text: "Which one is a greeting?"},
			Body: lesson.MultipleChoice{Options: []lesson.Option{
				{MediaElement: lesson.MediaElement{ID: lesson.NewID(), Text: "Hvala"}},
				{MediaElement: lesson.MediaElement{ID: lesson.NewID(), Text: "Zdravo"}, IsCorrect: true},
			}},
		},
		{
			ID:       lesson.NewID(),
			Type:     lesson.TypeFillInBlanks,
			Title:    "Fill the blank",
			Question: lesson.MediaElement{ID: lesson.NewID(), Text: "Zdravo, kako {si}?"},
			Body:     lesson.FillInBlanks{},
		},
		{
			ID:       lesson.NewID(),
			Type:     lesson.TypeDialogue,
			Title:    "At the cafe",
			Question: lesson.MediaElement{ID: lesson.NewID(), Text: "Read the exchange"},
			Body: lesson.Dialogue{Items: []lesson.MediaElement{
				{ID: lesson.NewID(), Text: "Dobar dan"},
				{ID: lesson.NewID(), Text: "Dobar dan, izvolite"},
			}},
		},
	}
	return l
}

func TestPlayerScreen_IntroToFirstActivity(t *testing.T) {
	p := New(testLesson())

	if p.Title() != "Greetings" {
		t.Errorf("Title = %q, want lesson title", p.Title())
	}
	if !strings.Contains(p.View(80, 24), "You will learn to:") {
		t.Error("intro view should list objectives")
	}

	p.Update(keyCode(tea.KeyEnter))

	if p.prog.Step != 1 {
		t.Errorf("Step = %d after intro, want 1", p.prog.Step)
	}
	if p.prog.Answered {
		t.Error("first activity should start unanswered")
	}
}

func TestPlayerScreen_MultipleChoiceWrongThenRight(t *testing.T) {
	p := New(testLesson())
	p.Update(keyCode(tea.KeyEnter)) // past intro

	// First option is wrong; enter selects and checks in one stroke.
	p.Update(keyCode(tea.KeyEnter))
	if !p.prog.Answered || p.prog.Correct {
		t.Fatalf("answered=%v correct=%v, want answered wrong", p.prog.Answered, p.prog.Correct)
	}
	if !strings.Contains(p.View(80, 24), "Not quite.") {
		t.Error("wrong answer should render feedback")
	}

	// Fresh run, pick the second (correct) option.
	p = New(testLesson())
	p.Update(keyCode(tea.KeyEnter))
	p.Update(keyCode(tea.KeyDown))
	p.Update(keyCode(tea.KeyEnter))
	if !p.prog.Answered || !p.prog.Correct {
		t.Fatalf("answered=%v correct=%v, want answered correct", p.prog.Answered, p.prog.Correct)
	}
}

func TestPlayerScreen_BlanksTapAndCheck(t *testing.T) {
	p := New(testLesson())
	p.Update(keyCode(tea.KeyEnter)) // intro
	p.Update(keyCode(tea.KeyDown))  // select correct MC option
	p.Update(keyCode(tea.KeyEnter)) // check
	p.Update(keyCode(tea.KeyEnter)) // continue to blanks

	cur := p.prog.Current()
	if cur == nil || cur.Type != lesson.TypeFillInBlanks {
		t.Fatalf("expected a fill-in-blanks step, got %+v", cur)
	}

	p.Update(keyCode(tea.KeyEnter)) // place the only word
	if !p.prog.Slots.AllFilled() {
		t.Fatal("blank should be filled after placing the word")
	}

	// Backspace returns the word to the pool.
	p.Update(keyCode(tea.KeyBackspace))
	if p.prog.Slots.AllFilled() {
		t.Fatal("backspace should empty the blank again")
	}

	p.Update(keyCode(tea.KeyEnter)) // place again
	p.Update(keyCode(tea.KeyEnter)) // all filled, check
	if !p.prog.Answered || !p.prog.Correct {
		t.Errorf("answered=%v correct=%v, want a correct blanks answer", p.prog.Answered, p.prog.Correct)
	}
}

func TestPlayerScreen_FullRunToSummary(t *testing.T) {
	p := New(testLesson())

	presses := []tea.KeyPressMsg{
		keyCode(tea.KeyEnter), // intro
		keyCode(tea.KeyDown),  // MC correct option
		keyCode(tea.KeyEnter), // check
		keyCode(tea.KeyEnter), // continue
		keyCode(tea.KeyEnter), // place word
		keyCode(tea.KeyEnter), // check blanks
		keyCode(tea.KeyEnter), // continue
		keyCode(tea.KeyEnter), // dialogue check
		keyCode(tea.KeyEnter), // continue past final step
	}
	for _, k := range presses {
		p.Update(k)
	}

	if !p.prog.Done() {
		t.Fatalf("expected completion, at step %d of %d", p.prog.Step, p.prog.TotalSteps())
	}
	if p.Title() != "Lesson Complete" {
		t.Errorf("Title = %q at completion", p.Title())
	}
	if got := p.prog.CorrectCount(); got != 3 {
		t.Errorf("CorrectCount = %d, want 3", got)
	}
	if !strings.Contains(p.View(80, 24), "You got 3 of 3") {
		t.Error("summary should report the score")
	}

	// Enter on the summary pops back.
	_, cmd := p.Update(keyCode(tea.KeyEnter))
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestPlayerScreen_KeysIgnoredAfterAnswer(t *testing.T) {
	p := New(testLesson())
	p.Update(keyCode(tea.KeyEnter)) // intro
	p.Update(keyCode(tea.KeyEnter)) // check the first (wrong) option

	if !p.prog.Answered {
		t.Fatal("expected the step to be answered")
	}
	p.Update(keyRune('j'))
	p.Update(keyCode(tea.KeyDown))
	if p.mcCursor != 0 {
		t.Error("cursor should not move once the step is answered")
	}
}
