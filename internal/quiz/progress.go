// Package quiz implements the learner-side step controller: it walks a
// lesson one step at a time (intro first, then one step per activity)
// with check/continue gating and immediate feedback.
package quiz

import (
	"github.com/dverbin/phrasal/internal/blanks"
	"github.com/dverbin/phrasal/internal/lesson"
)

// StepResult records the outcome of one checked step, for the completion
// summary.
type StepResult struct {
	ActivityID string
	Title      string
	Type       lesson.ActivityType
	Correct    bool
}

// Progress is the quiz state machine for one lesson run. Step 0 is the
// intro/objectives screen; steps 1..N map to activities in document
// order; step N+1... never exists — TotalSteps is the terminal state.
type Progress struct {
	Lesson lesson.Lesson

	Step     int
	Answered bool
	Correct  bool
	Selected string // option text or pair ID, tentative until checked

	// Slots is the blank-assignment sub-state, non-nil only on a
	// fill-in-blanks step.
	Slots *blanks.SlotState

	Results []StepResult
}

// New starts a run at the intro step.
func New(l lesson.Lesson) *Progress {
	p := &Progress{Lesson: l.Clone()}
	p.enterStep()
	return p
}

// TotalSteps is the intro plus one step per activity. Reaching this step
// value is the terminal completion state.
func (p *Progress) TotalSteps() int {
	return 1 + len(p.Lesson.Activities)
}

// Done reports whether the run has reached the completion state.
func (p *Progress) Done() bool {
	return p.Step >= p.TotalSteps()
}

// Current returns the activity for the current step, or nil on the intro
// and completion steps.
func (p *Progress) Current() *lesson.Activity {
	if p.Step < 1 || p.Step > len(p.Lesson.Activities) {
		return nil
	}
	return &p.Lesson.Activities[p.Step-1]
}

// SelectAnswer records the learner's tentative choice: option text for
// multiple-choice, pair ID for match-image. Ignored once the step has
// been checked.
func (p *Progress) SelectAnswer(value string) {
	if p.Answered || p.Done() {
		return
	}
	p.Selected = value
}

// TapWord forwards a word tap to the blank-slot sub-state. No-op unless
// the current step is an unchecked fill-in-blanks step.
func (p *Progress) TapWord(word string) {
	if p.Answered || p.Slots == nil {
		return
	}
	p.Slots.TapWord(word)
}

// TapBlank forwards a blank tap to the blank-slot sub-state.
func (p *Progress) TapBlank(index int) {
	if p.Answered || p.Slots == nil {
		return
	}
	p.Slots.TapBlank(index)
}

// CanCheck reports whether the current step has enough input to check:
// always on the intro, all blanks filled for fill-in-blanks, a selection
// for multiple-choice, immediately for the read-and-confirm types.
func (p *Progress) CanCheck() bool {
	if p.Done() || p.Answered {
		return false
	}
	a := p.Current()
	if a == nil {
		return true // intro
	}
	switch a.Type {
	case lesson.TypeMultipleChoice:
		return p.Selected != ""
	case lesson.TypeFillInBlanks:
		return p.Slots != nil && p.Slots.AllFilled()
	}
	return true
}

// Check evaluates the current step and fixes the result. The intro is
// trivially correct. Multiple-choice is correct iff the selected option
// is flagged correct; fill-in-blanks iff every slot holds its expected
// word. Dialogue, ordering and match-image gate pacing, not correctness,
// and always check correct. No-op once answered or past the end.
func (p *Progress) Check() {
	if p.Answered || p.Done() {
		return
	}

	a := p.Current()
	correct := true
	if a != nil {
		switch a.Type {
		case lesson.TypeMultipleChoice:
			correct = false
			for _, o := range a.Options() {
				if o.Text == p.Selected && o.IsCorrect {
					correct = true
					break
				}
			}
		case lesson.TypeFillInBlanks:
			correct = p.Slots != nil && p.Slots.Correct()
		}

		p.Results = append(p.Results, StepResult{
			ActivityID: a.ID,
			Title:      a.Title,
			Type:       a.Type,
			Correct:    correct,
		})
	}

	p.Answered = true
	p.Correct = correct
}

// Continue advances to the next step, resetting per-step answer state.
// Legal only once the current step is answered; a continue past the final
// step is a no-op (the run stays in the completion state).
func (p *Progress) Continue() {
	if !p.Answered || p.Done() {
		return
	}
	p.Step++
	p.enterStep()
}

// enterStep resets per-step state and initializes the blank-slot
// sub-state when the new step is a fill-in-blanks activity.
func (p *Progress) enterStep() {
	p.Answered = false
	p.Correct = false
	p.Selected = ""
	p.Slots = nil

	if a := p.Current(); a != nil && a.Type == lesson.TypeFillInBlanks {
		tmpl := blanks.Tokenize(a.Question.Text)
		p.Slots = blanks.NewSlotState(tmpl, a.WordBlocks())
	}
}

// CorrectCount tallies checked steps that were correct.
func (p *Progress) CorrectCount() int {
	n := 0
	for _, r := range p.Results {
		if r.Correct {
			n++
		}
	}
	return n
}
