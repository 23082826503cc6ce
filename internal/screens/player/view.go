package player

import (
	"fmt"
	"strings"

	"github.com/dverbin/phrasal/internal/lesson"
	"github.com/dverbin/phrasal/internal/ui/components"
	"github.com/dverbin/phrasal/internal/ui/theme"
)

func (p *PlayerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch {
	case p.prog.Done():
		body = p.renderSummary(cw)
	case p.prog.Step == 0:
		body = p.renderIntro(cw)
	default:
		body = p.renderStep(cw)
	}

	return components.CenterFrame(body, width, height)
}

func (p *PlayerScreen) renderIntro(cw int) string {
	l := p.prog.Lesson
	var b strings.Builder

	b.WriteString(theme.Title.Render(l.Title) + "\n")
	if l.Level != "" {
		b.WriteString(theme.Subtitle.Render(l.Level) + "\n")
	}
	b.WriteString("\n")

	if l.Description != "" {
		b.WriteString(theme.Body.Render(l.Description) + "\n\n")
	}

	for _, part := range l.IntroParts {
		b.WriteString(theme.Body.Render(part) + "\n")
	}
	if len(l.IntroParts) > 0 {
		b.WriteString("\n")
	}

	if len(l.Objectives) > 0 {
		b.WriteString(theme.Selected.Render("You will learn to:") + "\n")
		for _, o := range l.Objectives {
			b.WriteString(theme.Body.Render("  - "+o) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d activities. Press Enter to start.", len(l.Activities))))
	return components.Card(b.String(), cw)
}

func (p *PlayerScreen) renderStep(cw int) string {
	cur := p.prog.Current()
	if cur == nil {
		return ""
	}

	var b strings.Builder

	progress := components.NewProgressBar("", float64(p.prog.Step)/float64(p.prog.TotalSteps()-1), false, cw-8)
	b.WriteString(progress.View() + "\n\n")

	if cur.Title != "" {
		b.WriteString(theme.Title.Render(cur.Title) + "\n")
	}
	if cur.Description != "" {
		b.WriteString(theme.Subtitle.Render(cur.Description) + "\n")
	}
	b.WriteString("\n")

	switch cur.Type {
	case lesson.TypeMultipleChoice:
		b.WriteString(p.renderChoice(cur))
	case lesson.TypeFillInBlanks:
		b.WriteString(p.renderBlanks(cur))
	case lesson.TypeOrdering, lesson.TypeDialogue:
		b.WriteString(p.renderItems(cur))
	case lesson.TypeMatchImage:
		b.WriteString(p.renderPairs(cur))
	}

	if p.prog.Answered {
		b.WriteString("\n")
		if p.prog.Correct {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
		}
		b.WriteString(theme.Hint.Render("  Press Enter to continue."))
	}

	return components.Card(b.String(), cw)
}

func (p *PlayerScreen) renderChoice(cur *lesson.Activity) string {
	s := theme.Body.Render(cur.Question.Text) + "\n"
	if p.prog.Answered && cur.Question.Translation != "" {
		s += theme.Translation.Render(cur.Question.Translation) + "\n"
	}
	s += "\n"

	opts := cur.Options()
	rows := make([]components.ChoiceOption, len(opts))
	for i, o := range opts {
		rows[i] = components.ChoiceOption{
			Text:        o.Text,
			Translation: o.Translation,
			Correct:     o.IsCorrect,
			Chosen:      o.Text == p.prog.Selected,
		}
	}
	return s + components.RenderChoices(rows, p.mcCursor, p.prog.Answered)
}

func (p *PlayerScreen) renderBlanks(cur *lesson.Activity) string {
	slots := p.prog.Slots
	if slots == nil {
		return ""
	}

	s := components.RenderBlankSentence(slots, p.prog.Answered) + "\n"
	if p.prog.Answered && cur.Question.Translation != "" {
		s += theme.Translation.Render(cur.Question.Translation) + "\n"
	}
	s += "\n"

	if !p.prog.Answered {
		s += theme.Hint.Render("Word bank:") + "\n"
		s += components.RenderWordBank(slots.Available, p.bankCursor, true) + "\n"
		if slots.AllFilled() {
			s += "\n" + theme.Hint.Render("All blanks filled. Press Enter to check.")
		}
	}

	return s
}

func (p *PlayerScreen) renderItems(cur *lesson.Activity) string {
	var b strings.Builder
	b.WriteString(theme.Body.Render(cur.Question.Text) + "\n\n")

	for i, item := range cur.Items() {
		prefix := fmt.Sprintf("%d. ", i+1)
		if cur.Type == lesson.TypeDialogue {
			speaker := "A"
			if i%2 == 1 {
				speaker = "B"
			}
			prefix = speaker + ": "
		}
		b.WriteString(theme.Body.Render(prefix+item.Text) + "\n")
		if item.Translation != "" {
			b.WriteString("   " + theme.Translation.Render(item.Translation) + "\n")
		}
	}

	if !p.prog.Answered {
		b.WriteString("\n" + theme.Hint.Render("Read through, then press Enter."))
	}
	return b.String()
}

func (p *PlayerScreen) renderPairs(cur *lesson.Activity) string {
	var b strings.Builder
	b.WriteString(theme.Body.Render(cur.Question.Text) + "\n\n")

	for _, pair := range cur.Pairs() {
		b.WriteString(theme.Body.Render(pair.Text))
		b.WriteString(theme.Hint.Render("  ⇔  "))
		b.WriteString(theme.Selected.Render(pair.Image) + "\n")
		if pair.Translation != "" {
			b.WriteString("   " + theme.Translation.Render(pair.Translation) + "\n")
		}
	}

	if !p.prog.Answered {
		b.WriteString("\n" + theme.Hint.Render("Study the pairs, then press Enter."))
	}
	return b.String()
}

func (p *PlayerScreen) renderSummary(cw int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Lesson complete!") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("You got %d of %d activities right.",
		p.prog.CorrectCount(), len(p.prog.Results))) + "\n\n")

	for _, r := range p.prog.Results {
		mark := theme.Correct.Render("✓")
		if !r.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		title := r.Title
		if title == "" {
			title = string(r.Type)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", mark, theme.Body.Render(title)))
	}

	b.WriteString("\n" + theme.Hint.Render("Press Enter to finish."))
	return components.Card(b.String(), cw)
}
