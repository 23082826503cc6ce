package lesson

import "time"

// ActivityType discriminates the five activity kinds a lesson can contain.
type ActivityType string

const (
	TypeMultipleChoice ActivityType = "multiple-choice"
	TypeFillInBlanks   ActivityType = "fill-in-blanks"
	TypeOrdering       ActivityType = "ordering"
	TypeDialogue       ActivityType = "dialogue"
	TypeMatchImage     ActivityType = "match-image"
)

// AllTypes lists every activity type in menu order.
func AllTypes() []ActivityType {
	return []ActivityType{
		TypeMultipleChoice,
		TypeFillInBlanks,
		TypeOrdering,
		TypeDialogue,
		TypeMatchImage,
	}
}

// Difficulty is the author-assigned difficulty of an activity.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// MediaElement is a bilingual phrase with an optional audio attachment.
// It is always owned by a parent activity field and never persisted alone.
type MediaElement struct {
	ID          string
	Text        string
	Translation string
	AudioRef    string // attachment name, empty if no audio
	AudioURL    string
}

// Option is a multiple-choice option.
type Option struct {
	MediaElement
	IsCorrect bool
}

// Pair is a match-image pair: a phrase matched against an image.
type Pair struct {
	MediaElement
	Image string
}

// Body holds the fields specific to one activity type. Exactly one
// variant exists per ActivityType; an Activity with a mismatched Type
// and Body is invalid by construction.
type Body interface {
	activityType() ActivityType
}

// MultipleChoice is the body of a multiple-choice activity.
type MultipleChoice struct {
	Options []Option
}

// FillInBlanks is the body of a fill-in-the-blanks activity. The blank
// template itself lives in Question.Text; WordBlocks is the distractor
// pool offered to the learner (falls back to the blank answers when empty).
type FillInBlanks struct {
	WordBlocks []string
}

// Ordering is the body of an ordering activity.
type Ordering struct {
	Items []MediaElement
}

// Dialogue is the body of a dialogue activity.
type Dialogue struct {
	Items []MediaElement
}

// MatchImage is the body of a match-image activity.
type MatchImage struct {
	Pairs []Pair
}

func (MultipleChoice) activityType() ActivityType { return TypeMultipleChoice }
func (FillInBlanks) activityType() ActivityType   { return TypeFillInBlanks }
func (Ordering) activityType() ActivityType       { return TypeOrdering }
func (Dialogue) activityType() ActivityType       { return TypeDialogue }
func (MatchImage) activityType() ActivityType     { return TypeMatchImage }

// Activity is one quiz unit of a fixed type, owned by a Lesson.
type Activity struct {
	ID           string
	Type         ActivityType
	Title        string
	Description  string
	Question     MediaElement
	Difficulty   Difficulty
	TimeEstimate int // minutes
	Body         Body
}

// Options returns the multiple-choice options, or nil for other types.
func (a Activity) Options() []Option {
	if b, ok := a.Body.(MultipleChoice); ok {
		return b.Options
	}
	return nil
}

// Items returns the ordering/dialogue items, or nil for other types.
func (a Activity) Items() []MediaElement {
	switch b := a.Body.(type) {
	case Ordering:
		return b.Items
	case Dialogue:
		return b.Items
	}
	return nil
}

// Pairs returns the match-image pairs, or nil for other types.
func (a Activity) Pairs() []Pair {
	if b, ok := a.Body.(MatchImage); ok {
		return b.Pairs
	}
	return nil
}

// WordBlocks returns the fill-in-blanks word pool, or nil for other types.
func (a Activity) WordBlocks() []string {
	if b, ok := a.Body.(FillInBlanks); ok {
		return b.WordBlocks
	}
	return nil
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	switch b := a.Body.(type) {
	case MultipleChoice:
		out.Body = MultipleChoice{Options: append([]Option(nil), b.Options...)}
	case FillInBlanks:
		out.Body = FillInBlanks{WordBlocks: append([]string(nil), b.WordBlocks...)}
	case Ordering:
		out.Body = Ordering{Items: append([]MediaElement(nil), b.Items...)}
	case Dialogue:
		out.Body = Dialogue{Items: append([]MediaElement(nil), b.Items...)}
	case MatchImage:
		out.Body = MatchImage{Pairs: append([]Pair(nil), b.Pairs...)}
	}
	return out
}

// Lesson is an ordered collection of activities with learner-facing
// metadata. Activity order is display order — the player walks the slice
// front to back.
type Lesson struct {
	ID          string
	Title       string
	Description string
	Level       string
	Objectives  []string
	IntroParts  []string
	Activities  []Activity
	Tags        []string
	IsSaved     bool
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New allocates a fresh lesson with a collision-free ID.
func New() Lesson {
	now := time.Now()
	return Lesson{
		ID:        NewID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ActivityIndex returns the position of the activity with the given ID,
// or -1 if no activity has it.
func (l Lesson) ActivityIndex(id string) int {
	for i, a := range l.Activities {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the lesson.
func (l Lesson) Clone() Lesson {
	out := l
	out.Objectives = append([]string(nil), l.Objectives...)
	out.IntroParts = append([]string(nil), l.IntroParts...)
	out.Tags = append([]string(nil), l.Tags...)
	out.Activities = make([]Activity, len(l.Activities))
	for i, a := range l.Activities {
		out.Activities[i] = a.Clone()
	}
	return out
}
