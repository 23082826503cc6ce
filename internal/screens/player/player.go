// Package player implements the lesson playback screen: the intro step,
// one step per activity and the completion summary. All progression
// rules live in the quiz package; this screen maps keys onto it.
package player

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dverbin/phrasal/internal/lesson"
	"github.com/dverbin/phrasal/internal/quiz"
	"github.com/dverbin/phrasal/internal/router"
	"github.com/dverbin/phrasal/internal/screen"
	"github.com/dverbin/phrasal/internal/ui/layout"
)

// PlayerScreen runs one lesson from intro to summary.
type PlayerScreen struct {
	prog       *quiz.Progress
	mcCursor   int
	bankCursor int
}

var (
	_ screen.Screen          = (*PlayerScreen)(nil)
	_ screen.KeyHintProvider = (*PlayerScreen)(nil)
)

// New creates a player for the given lesson.
func New(l lesson.Lesson) *PlayerScreen {
	return &PlayerScreen{prog: quiz.New(l)}
}

func (p *PlayerScreen) Init() tea.Cmd {
	return nil
}

func (p *PlayerScreen) Title() string {
	if p.prog.Done() {
		return "Lesson Complete"
	}
	return p.prog.Lesson.Title
}

func (p *PlayerScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.prog.Done():
		return []layout.KeyHint{{Key: "Enter", Description: "Finish"}}
	case p.prog.Step == 0:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Quit"},
		}
	case p.prog.Answered:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	default:
		cur := p.prog.Current()
		if cur != nil && cur.Type == lesson.TypeFillInBlanks {
			return []layout.KeyHint{
				{Key: "←/→", Description: "Pick word"},
				{Key: "Enter", Description: "Place / Check"},
				{Key: "Backspace", Description: "Take back"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (p *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.prog.Done() {
		if kmsg.String() == "enter" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}

	// Intro step: a single keystroke moves on.
	if p.prog.Step == 0 {
		if kmsg.String() == "enter" {
			p.prog.Check()
			p.prog.Continue()
			p.enterStep()
		}
		return p, nil
	}

	if p.prog.Answered {
		if kmsg.String() == "enter" {
			p.prog.Continue()
			p.enterStep()
		}
		return p, nil
	}

	cur := p.prog.Current()
	if cur == nil {
		return p, nil
	}

	switch cur.Type {
	case lesson.TypeMultipleChoice:
		p.handleChoiceKey(kmsg, cur)
	case lesson.TypeFillInBlanks:
		p.handleBlanksKey(kmsg)
	default:
		// Ordering, dialogue and match-image are study steps: the
		// learner reads them and checks through.
		if kmsg.String() == "enter" {
			p.prog.Check()
		}
	}

	return p, nil
}

// enterStep resets per-step cursors after advancing.
func (p *PlayerScreen) enterStep() {
	p.mcCursor = 0
	p.bankCursor = 0
}

func (p *PlayerScreen) handleChoiceKey(kmsg tea.KeyMsg, cur *lesson.Activity) {
	opts := cur.Options()

	switch kmsg.String() {
	case "up", "k":
		if p.mcCursor > 0 {
			p.mcCursor--
		}
	case "down", "j":
		if p.mcCursor < len(opts)-1 {
			p.mcCursor++
		}
	case "enter":
		if p.mcCursor < len(opts) {
			p.prog.SelectAnswer(opts[p.mcCursor].Text)
		}
		if p.prog.CanCheck() {
			p.prog.Check()
		}
	}
}

func (p *PlayerScreen) handleBlanksKey(kmsg tea.KeyMsg) {
	slots := p.prog.Slots
	if slots == nil {
		return
	}

	switch kmsg.String() {
	case "left", "h":
		if p.bankCursor > 0 {
			p.bankCursor--
		}
	case "right", "l":
		if p.bankCursor < len(slots.Available)-1 {
			p.bankCursor++
		}
	case "enter", " ":
		if slots.AllFilled() {
			if p.prog.CanCheck() {
				p.prog.Check()
			}
			return
		}
		if p.bankCursor < len(slots.Available) {
			p.prog.TapWord(slots.Available[p.bankCursor])
			if p.bankCursor >= len(slots.Available) {
				p.bankCursor = 0
			}
		}
	case "backspace":
		// Take back the most recently reachable filled blank.
		for i := slots.Template.Blanks() - 1; i >= 0; i-- {
			if _, ok := slots.Filled[i]; ok {
				p.prog.TapBlank(i)
				break
			}
		}
	}
}
