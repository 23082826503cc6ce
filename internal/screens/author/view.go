package author

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dverbin/phrasal/internal/authoring"
	"github.com/dverbin/phrasal/internal/editor"
	"github.com/dverbin/phrasal/internal/lesson"
	"github.com/dverbin/phrasal/internal/ui/components"
	"github.com/dverbin/phrasal/internal/ui/theme"
)

func (s *AuthorScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch {
	case s.confirmDelete:
		body = s.renderConfirm(cw, "Delete this lesson?", s.savedTitle())
	case s.confirmAct:
		body = s.renderConfirm(cw, "Delete this activity?", s.activityTitle())
	case s.typeMenu:
		body = s.renderTypeMenu(cw)
	case s.topicPrompt:
		body = s.renderTopicPrompt(cw)
	case s.audioPrompt:
		body = s.renderAudioPrompt(cw)
	case s.state.Editing():
		body = s.renderDraft(cw)
	case s.state.View == authoring.ViewSetup:
		body = s.renderSetup(cw)
	case s.state.View == authoring.ViewBuilder:
		body = s.renderBuilder(cw)
	default:
		body = s.renderList(cw)
	}

	if s.status != "" {
		body += "\n\n" + theme.Hint.Render(s.status)
	}

	return components.CenterFrame(body, width, height)
}

func (s *AuthorScreen) savedTitle() string {
	if s.listCursor < len(s.saved) {
		return s.saved[s.listCursor].Title
	}
	return ""
}

func (s *AuthorScreen) activityTitle() string {
	acts := s.state.Lesson.Activities
	if s.actCursor < len(acts) {
		return acts[s.actCursor].Title
	}
	return ""
}

func (s *AuthorScreen) renderConfirm(cw int, question, subject string) string {
	content := theme.Incorrect.Render(question) + "\n\n" +
		theme.Body.Render(subject) + "\n\n" +
		theme.Hint.Render("y to delete, n to keep")
	return components.Card(content, cw)
}

func (s *AuthorScreen) renderList(cw int) string {
	if s.listLoading {
		return theme.Hint.Render("Loading lessons...")
	}
	if len(s.saved) == 0 {
		content := theme.Subtitle.Render("No lessons yet.") + "\n\n" +
			theme.Hint.Render("Press n to create your first lesson.")
		return components.Card(content, cw)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("My Lessons") + "\n\n")

	for i, l := range s.saved {
		title := l.Title
		if title == "" {
			title = "(untitled)"
		}
		line := fmt.Sprintf("%-30s  %-12s  %2d activities", truncate(title, 30), l.Level, len(l.Activities))
		if l.IsPublished {
			line += "  published"
		}

		if i == s.listCursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	return components.Card(b.String(), cw)
}

func (s *AuthorScreen) renderSetup(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Lesson Setup") + "\n\n")

	for i, in := range s.form.inputs {
		label := s.form.labels[i]
		if i == s.form.focus {
			b.WriteString(theme.Selected.Render(label) + "\n")
		} else {
			b.WriteString(theme.Hint.Render(label) + "\n")
		}
		b.WriteString(in.View() + "\n\n")
	}

	b.WriteString(theme.Hint.Render("Enter on the last field continues to the builder."))
	return components.Card(b.String(), cw)
}

func (s *AuthorScreen) renderBuilder(cw int) string {
	var b strings.Builder

	title := s.state.Lesson.Title
	if title == "" {
		title = "(untitled lesson)"
	}
	b.WriteString(theme.Title.Render(title) + "\n")

	saved := "not saved yet"
	if s.state.Lesson.IsSaved {
		saved = "saved"
	}
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d activities - %s", len(s.state.Lesson.Activities), saved)) + "\n\n")

	if len(s.state.Lesson.Activities) == 0 {
		b.WriteString(theme.Hint.Render("No activities yet. Press n to add one"))
		if s.suggestSvc != nil {
			b.WriteString(theme.Hint.Render(" or g to ask for a suggestion"))
		}
		b.WriteString(theme.Hint.Render(".") + "\n")
	}

	for i, a := range s.state.Lesson.Activities {
		atitle := a.Title
		if atitle == "" {
			atitle = "(untitled)"
		}
		line := fmt.Sprintf("%2d. %-28s  %-16s  %-12s  %d min",
			i+1, truncate(atitle, 28), a.Type, a.Difficulty, a.TimeEstimate)

		if i == s.actCursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	if s.suggesting {
		b.WriteString("\n" + theme.Hint.Render("Generating suggestion..."))
	}

	return components.Card(b.String(), cw)
}

func (s *AuthorScreen) renderTypeMenu(cw int) string {
	var b strings.Builder
	if s.suggestMode {
		b.WriteString(theme.Title.Render("Suggest which type?") + "\n\n")
	} else {
		b.WriteString(theme.Title.Render("New activity") + "\n\n")
	}

	for i, t := range lesson.AllTypes() {
		if i == s.typeCursor {
			b.WriteString(theme.Selected.Render("▸ "+string(t)) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+string(t)) + "\n")
		}
	}

	return components.Card(b.String(), cw)
}

func (s *AuthorScreen) renderTopicPrompt(cw int) string {
	content := theme.Title.Render("Suggest a "+string(s.suggestType)+" activity") + "\n\n" +
		theme.Hint.Render("Topic") + "\n" +
		s.topicInput.View() + "\n\n" +
		theme.Hint.Render("Enter to generate, Esc to cancel")
	return components.Card(content, cw)
}

func (s *AuthorScreen) renderAudioPrompt(cw int) string {
	content := theme.Title.Render("Attach audio") + "\n\n" +
		theme.Hint.Render("File path") + "\n" +
		s.audioInput.View() + "\n\n" +
		theme.Hint.Render("Enter to attach, Esc to cancel")
	return components.Card(content, cw)
}

func (s *AuthorScreen) renderDraft(cw int) string {
	d := s.state.Draft
	var b strings.Builder

	b.WriteString(theme.Title.Render(string(d.Activity.Type)) + "\n")
	b.WriteString(theme.Subtitle.Render("difficulty: "+string(d.Activity.Difficulty)) + "\n\n")

	for i, row := range s.rows {
		if i == s.rowCursor && s.editingRow {
			b.WriteString(theme.Selected.Render(row.label) + "\n")
			b.WriteString(s.rowInput.View() + "\n")
			continue
		}

		value := row.value
		if value == "" {
			value = theme.Hint.Render("(empty)")
		} else {
			value = theme.Body.Render(value)
		}

		audio := ""
		if row.media != nil && s.mediaHasAudio(*row.media) {
			audio = lipgloss.NewStyle().Foreground(theme.Accent).Render(" ♪")
		}

		if i == s.rowCursor {
			b.WriteString(theme.Selected.Render("▸ "+row.label) + audio + "\n  " + value + "\n")
		} else {
			b.WriteString(theme.Hint.Render("  "+row.label) + audio + "\n  " + value + "\n")
		}
	}

	if len(s.errs) > 0 {
		b.WriteString("\n")
		for _, e := range s.errs {
			b.WriteString(theme.Warning.Render("! "+e) + "\n")
		}
	}

	return components.Card(b.String(), cw)
}

// mediaHasAudio reports whether the media element a row points at has an
// audio attachment, for the ♪ marker.
func (s *AuthorScreen) mediaHasAudio(ref mediaRef) bool {
	a := s.state.Draft.Activity
	switch ref.target {
	case editor.TargetQuestion:
		return a.Question.AudioRef != ""
	case editor.TargetOptions:
		opts := a.Options()
		return ref.index < len(opts) && opts[ref.index].AudioRef != ""
	case editor.TargetItems:
		items := a.Items()
		return ref.index < len(items) && items[ref.index].AudioRef != ""
	case editor.TargetPairs:
		pairs := a.Pairs()
		return ref.index < len(pairs) && pairs[ref.index].AudioRef != ""
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
