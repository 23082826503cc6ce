package author

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dverbin/phrasal/internal/authoring"
	"github.com/dverbin/phrasal/internal/lesson"
	"github.com/dverbin/phrasal/internal/ui/components"
)

// setupForm is the lesson metadata form shown on the setup view. Field
// values are committed to the authoring reducer when the author leaves
// the view, not on every keystroke.
type setupForm struct {
	labels []string
	inputs []components.TextInput
	focus  int
}

const (
	formTitle = iota
	formDescription
	formLevel
	formObjectives
	formIntro
	formTags
	formFieldCount
)

func newSetupForm(l lesson.Lesson) setupForm {
	f := setupForm{
		labels: []string{
			"Title",
			"Description",
			"Level",
			"Objectives (comma separated)",
			"Intro lines (separate with |)",
			"Tags (comma separated)",
		},
	}

	placeholders := []string{
		"Everyday Greetings",
		"What the learner will practice",
		"beginner",
		"greet people, say goodbye",
		"Welcome! | In this lesson you will learn to greet people.",
		"greetings, basics",
	}

	values := []string{
		l.Title,
		l.Description,
		l.Level,
		strings.Join(l.Objectives, ", "),
		strings.Join(l.IntroParts, " | "),
		strings.Join(l.Tags, ", "),
	}

	f.inputs = make([]components.TextInput, formFieldCount)
	for i := range f.inputs {
		f.inputs[i] = components.NewTextInput(placeholders[i], false, 120)
		f.inputs[i].SetValue(values[i])
	}

	return f
}

func (f *setupForm) Init() tea.Cmd {
	f.focus = 0
	return f.inputs[0].Focus()
}

func (f *setupForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *setupForm) Next() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *setupForm) Prev() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *setupForm) OnLastField() bool {
	return f.focus == len(f.inputs)-1
}

// actions converts the form values into reducer actions.
func (f setupForm) actions() []authoring.Action {
	return []authoring.Action{
		authoring.SetField{Field: authoring.FieldTitle, Value: strings.TrimSpace(f.inputs[formTitle].Value())},
		authoring.SetField{Field: authoring.FieldDescription, Value: strings.TrimSpace(f.inputs[formDescription].Value())},
		authoring.SetField{Field: authoring.FieldLevel, Value: strings.TrimSpace(f.inputs[formLevel].Value())},
		authoring.SetObjectives{Objectives: splitList(f.inputs[formObjectives].Value(), ",")},
		authoring.SetIntroParts{Parts: splitList(f.inputs[formIntro].Value(), "|")},
		authoring.SetTags{Tags: splitList(f.inputs[formTags].Value(), ",")},
	}
}

// splitList splits on sep, trims each part and drops empties.
func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
