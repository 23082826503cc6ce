// Package editor maintains the in-flight activity draft during an
// authoring session. Every operation returns a new draft so the author
// can always discard in-progress edits; the previous value is never
// mutated.
package editor

import "github.com/dverbin/phrasal/internal/lesson"

// Collection minimums enforced on removal. The validator re-checks the
// option/item/pair rules on save.
const (
	minOptions = 2
	minItems   = 1
	minPairs   = 2
)

// Draft is an activity being edited, not yet committed to its lesson.
type Draft struct {
	Activity lesson.Activity
}

// Target names which media field of the draft an operation addresses.
type Target string

const (
	TargetQuestion Target = "question"
	TargetOptions  Target = "options"
	TargetItems    Target = "items"
	TargetPairs    Target = "pairs"
)

// MediaKey names which field of a media element an operation edits.
type MediaKey string

const (
	KeyText        MediaKey = "text"
	KeyTranslation MediaKey = "translation"
	KeyImage       MediaKey = "image" // pairs only
)

// New creates a draft with a fresh ID and the default shape for the type.
func New(t lesson.ActivityType) Draft {
	return Draft{Activity: lesson.Activity{
		ID:         lesson.NewID(),
		Type:       t,
		Question:   lesson.MediaElement{ID: lesson.NewID()},
		Difficulty: lesson.DifficultyBeginner,
		Body:       defaultBody(t),
	}}
}

// FromActivity wraps an existing activity for editing.
func FromActivity(a lesson.Activity) Draft {
	return Draft{Activity: a.Clone()}
}

// defaultBody builds the starter collections for each type: enough
// elements to satisfy the validator minimums, all empty.
func defaultBody(t lesson.ActivityType) lesson.Body {
	switch t {
	case lesson.TypeMultipleChoice:
		return lesson.MultipleChoice{Options: []lesson.Option{newOption(), newOption()}}
	case lesson.TypeOrdering:
		return lesson.Ordering{Items: []lesson.MediaElement{newMedia(), newMedia()}}
	case lesson.TypeDialogue:
		return lesson.Dialogue{Items: []lesson.MediaElement{newMedia(), newMedia()}}
	case lesson.TypeMatchImage:
		return lesson.MatchImage{Pairs: []lesson.Pair{newPair(), newPair()}}
	case lesson.TypeFillInBlanks:
		return lesson.FillInBlanks{}
	}
	return nil
}

func newMedia() lesson.MediaElement {
	return lesson.MediaElement{ID: lesson.NewID()}
}

func newOption() lesson.Option {
	return lesson.Option{MediaElement: newMedia()}
}

func newPair() lesson.Pair {
	return lesson.Pair{MediaElement: newMedia()}
}

// Op is one edit to a draft. Apply an op with Apply; unknown or
// out-of-range edits leave the draft unchanged rather than failing.
type Op interface {
	apply(d Draft) Draft
}

// Apply runs one operation against the draft, returning the edited copy.
func Apply(d Draft, op Op) Draft {
	if op == nil {
		return d
	}
	return op.apply(Draft{Activity: d.Activity.Clone()})
}

// SetTitle sets the draft's title.
type SetTitle struct{ Value string }

// SetDescription sets the draft's description.
type SetDescription struct{ Value string }

// SetDifficulty sets the draft's difficulty.
type SetDifficulty struct{ Value lesson.Difficulty }

// SetTimeEstimate sets the estimated duration in minutes.
type SetTimeEstimate struct{ Minutes int }

func (op SetTitle) apply(d Draft) Draft {
	d.Activity.Title = op.Value
	return d
}

func (op SetDescription) apply(d Draft) Draft {
	d.Activity.Description = op.Value
	return d
}

func (op SetDifficulty) apply(d Draft) Draft {
	d.Activity.Difficulty = op.Value
	return d
}

func (op SetTimeEstimate) apply(d Draft) Draft {
	if op.Minutes >= 0 {
		d.Activity.TimeEstimate = op.Minutes
	}
	return d
}

// SetMediaField edits one field of the question or of an indexed element
// of options/items/pairs. Index is ignored for the question target.
type SetMediaField struct {
	Target Target
	Index  int
	Key    MediaKey
	Value  string
}

func (op SetMediaField) apply(d Draft) Draft {
	switch op.Target {
	case TargetQuestion:
		setMediaKey(&d.Activity.Question, op.Key, op.Value)

	case TargetOptions:
		b, ok := d.Activity.Body.(lesson.MultipleChoice)
		if !ok || op.Index < 0 || op.Index >= len(b.Options) {
			return d
		}
		setMediaKey(&b.Options[op.Index].MediaElement, op.Key, op.Value)
		d.Activity.Body = b

	case TargetItems:
		items := d.Activity.Items()
		if op.Index < 0 || op.Index >= len(items) {
			return d
		}
		setMediaKey(&items[op.Index], op.Key, op.Value)
		d.Activity.Body = rebuildItems(d.Activity, items)

	case TargetPairs:
		b, ok := d.Activity.Body.(lesson.MatchImage)
		if !ok || op.Index < 0 || op.Index >= len(b.Pairs) {
			return d
		}
		if op.Key == KeyImage {
			b.Pairs[op.Index].Image = op.Value
		} else {
			setMediaKey(&b.Pairs[op.Index].MediaElement, op.Key, op.Value)
		}
		d.Activity.Body = b
	}
	return d
}

func setMediaKey(m *lesson.MediaElement, key MediaKey, value string) {
	switch key {
	case KeyText:
		m.Text = value
	case KeyTranslation:
		m.Translation = value
	}
}

func rebuildItems(a lesson.Activity, items []lesson.MediaElement) lesson.Body {
	if a.Type == lesson.TypeDialogue {
		return lesson.Dialogue{Items: items}
	}
	return lesson.Ordering{Items: items}
}

// SetAudio stores a resolved audio attachment on the target media element.
// Attachment resolution is asynchronous; whichever resolution lands last
// wins the field.
type SetAudio struct {
	Target Target
	Index  int
	Name   string
	URL    string
}

func (op SetAudio) apply(d Draft) Draft {
	setAudio := func(m *lesson.MediaElement) {
		m.AudioRef = op.Name
		m.AudioURL = op.URL
	}

	switch op.Target {
	case TargetQuestion:
		setAudio(&d.Activity.Question)
	case TargetOptions:
		if b, ok := d.Activity.Body.(lesson.MultipleChoice); ok && op.Index >= 0 && op.Index < len(b.Options) {
			setAudio(&b.Options[op.Index].MediaElement)
			d.Activity.Body = b
		}
	case TargetItems:
		items := d.Activity.Items()
		if op.Index >= 0 && op.Index < len(items) {
			setAudio(&items[op.Index])
			d.Activity.Body = rebuildItems(d.Activity, items)
		}
	case TargetPairs:
		if b, ok := d.Activity.Body.(lesson.MatchImage); ok && op.Index >= 0 && op.Index < len(b.Pairs) {
			setAudio(&b.Pairs[op.Index].MediaElement)
			d.Activity.Body = b
		}
	}
	return d
}

// AddOption appends an empty option.
type AddOption struct{}

// RemoveOption removes the option at Index unless that would leave fewer
// than two options.
type RemoveOption struct{ Index int }

// SetCorrectOption marks exactly one option correct, clearing the rest.
type SetCorrectOption struct{ Index int }

func (AddOption) apply(d Draft) Draft {
	if b, ok := d.Activity.Body.(lesson.MultipleChoice); ok {
		b.Options = append(b.Options, newOption())
		d.Activity.Body = b
	}
	return d
}

func (op RemoveOption) apply(d Draft) Draft {
	b, ok := d.Activity.Body.(lesson.MultipleChoice)
	if !ok || len(b.Options) <= minOptions || op.Index < 0 || op.Index >= len(b.Options) {
		return d
	}
	b.Options = append(b.Options[:op.Index], b.Options[op.Index+1:]...)
	d.Activity.Body = b
	return d
}

func (op SetCorrectOption) apply(d Draft) Draft {
	b, ok := d.Activity.Body.(lesson.MultipleChoice)
	if !ok || op.Index < 0 || op.Index >= len(b.Options) {
		return d
	}
	for i := range b.Options {
		b.Options[i].IsCorrect = i == op.Index
	}
	d.Activity.Body = b
	return d
}

// AddItem appends an empty item to an ordering or dialogue draft.
type AddItem struct{}

// RemoveItem removes the item at Index unless it is the last one.
type RemoveItem struct{ Index int }

func (AddItem) apply(d Draft) Draft {
	if d.Activity.Type != lesson.TypeOrdering && d.Activity.Type != lesson.TypeDialogue {
		return d
	}
	d.Activity.Body = rebuildItems(d.Activity, append(d.Activity.Items(), newMedia()))
	return d
}

func (op RemoveItem) apply(d Draft) Draft {
	items := d.Activity.Items()
	if len(items) <= minItems || op.Index < 0 || op.Index >= len(items) {
		return d
	}
	d.Activity.Body = rebuildItems(d.Activity, append(items[:op.Index], items[op.Index+1:]...))
	return d
}

// AddPair appends an empty pair.
type AddPair struct{}

// RemovePair removes the pair at Index unless that would leave fewer than
// two pairs.
type RemovePair struct{ Index int }

func (AddPair) apply(d Draft) Draft {
	if b, ok := d.Activity.Body.(lesson.MatchImage); ok {
		b.Pairs = append(b.Pairs, newPair())
		d.Activity.Body = b
	}
	return d
}

func (op RemovePair) apply(d Draft) Draft {
	b, ok := d.Activity.Body.(lesson.MatchImage)
	if !ok || len(b.Pairs) <= minPairs || op.Index < 0 || op.Index >= len(b.Pairs) {
		return d
	}
	b.Pairs = append(b.Pairs[:op.Index], b.Pairs[op.Index+1:]...)
	d.Activity.Body = b
	return d
}

// SetWordBlocks replaces the fill-in-blanks word pool.
type SetWordBlocks struct{ Words []string }

func (op SetWordBlocks) apply(d Draft) Draft {
	if _, ok := d.Activity.Body.(lesson.FillInBlanks); ok {
		d.Activity.Body = lesson.FillInBlanks{WordBlocks: append([]string(nil), op.Words...)}
	}
	return d
}

// ChangeType resets the draft to the default shape for the new type,
// preserving only the ID and any title already set.
type ChangeType struct{ Type lesson.ActivityType }

func (op ChangeType) apply(d Draft) Draft {
	if op.Type == d.Activity.Type {
		return d
	}
	fresh := New(op.Type)
	fresh.Activity.ID = d.Activity.ID
	fresh.Activity.Title = d.Activity.Title
	return fresh
}
