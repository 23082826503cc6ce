package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dverbin/phrasal/internal/blanks"
	"github.com/dverbin/phrasal/internal/ui/theme"
)

// RenderBlankSentence renders the tokenized template with filled words
// inline and unfilled slots as underscores. After checking, filled words
// are colored by whether each slot holds its expected word.
func RenderBlankSentence(s *blanks.SlotState, answered bool) string {
	var b strings.Builder

	for _, tok := range s.Template.Tokens {
		if !tok.IsBlank {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(tok.Text))
			continue
		}

		word, filled := s.Filled[tok.Index]
		if !filled {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("______"))
			continue
		}

		style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		if answered {
			if word == tok.Correct {
				style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
			} else {
				style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
			}
		}
		b.WriteString(style.Render("[" + word + "]"))
	}

	return b.String()
}

// RenderWordBank renders the available word pool with a cursor. The
// cursor index is clamped by the caller.
func RenderWordBank(words []string, cursor int, active bool) string {
	if len(words) == 0 {
		return theme.Hint.Render("  (no words left)")
	}

	parts := make([]string, 0, len(words))
	for i, w := range words {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Padding(0, 1)

		if active && i == cursor {
			box = box.
				BorderForeground(theme.Primary).
				Foreground(theme.Primary).
				Bold(true)
		}
		parts = append(parts, box.Render(w))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
