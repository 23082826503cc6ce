package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/dverbin/phrasal/internal/ui/theme"
)

// ChoiceOption is one rendered multiple-choice row.
type ChoiceOption struct {
	Text        string
	Translation string
	Correct     bool
	Chosen      bool
}

var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// RenderChoices renders a multiple-choice option list. Before the answer
// is checked the selected row is highlighted; afterwards the correct
// option shows green and a wrong chosen option shows red, with
// translations revealed on every row.
func RenderChoices(opts []ChoiceOption, selected int, answered bool) string {
	var s string

	for i, opt := range opts {
		label := "?"
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}

		prefix := "  "
		if i == selected && !answered {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt.Text)

		if answered {
			gloss := ""
			if opt.Translation != "" {
				gloss = "\n       " + theme.Translation.Render(opt.Translation)
			}
			switch {
			case opt.Correct:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + gloss + "\n"
			case opt.Chosen:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + gloss + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + gloss + "\n"
			}
		} else {
			if i == selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}
