package lesson

import (
	"encoding/json"
	"time"
)

// The wire format between the authoring and learner sides is a superset
// document: every activity carries all collection fields and `type` is the
// discriminant. In memory the Body variant keeps invalid states
// unrepresentable; this codec flattens to and from the superset shape so
// documents interoperate with older tooling. Fields irrelevant to a given
// type may be present in incoming documents and are ignored.

type mediaDoc struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
	AudioRef    string `json:"audioRef,omitempty"`
	AudioURL    string `json:"audioUrl,omitempty"`
}

type optionDoc struct {
	mediaDoc
	IsCorrect bool `json:"isCorrect"`
}

type pairDoc struct {
	mediaDoc
	Image string `json:"image"`
}

type activityDoc struct {
	ID           string      `json:"id"`
	Type         string      `json:"type"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Question     mediaDoc    `json:"question"`
	Options      []optionDoc `json:"options,omitempty"`
	Items        []mediaDoc  `json:"items,omitempty"`
	Pairs        []pairDoc   `json:"pairs,omitempty"`
	WordBlocks   []string    `json:"wordBlocks,omitempty"`
	Difficulty   string      `json:"difficulty"`
	TimeEstimate int         `json:"timeEstimate"`
}

type lessonDoc struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Level       string          `json:"level"`
	Objectives  []string        `json:"objectives"`
	IntroParts  []string        `json:"introParts,omitempty"`
	Activities  []json.RawMessage `json:"activities"`
	Tags        []string        `json:"tags,omitempty"`
	IsSaved     bool            `json:"isSaved"`
	IsPublished bool            `json:"isPublished"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func mediaToDoc(m MediaElement) mediaDoc {
	return mediaDoc{
		ID:          m.ID,
		Text:        m.Text,
		Translation: m.Translation,
		AudioRef:    m.AudioRef,
		AudioURL:    m.AudioURL,
	}
}

func docToMedia(d mediaDoc) MediaElement {
	return MediaElement{
		ID:          d.ID,
		Text:        d.Text,
		Translation: d.Translation,
		AudioRef:    d.AudioRef,
		AudioURL:    d.AudioURL,
	}
}

// MarshalJSON writes the activity in the superset wire shape.
func (a Activity) MarshalJSON() ([]byte, error) {
	doc := activityDoc{
		ID:           a.ID,
		Type:         string(a.Type),
		Title:        a.Title,
		Description:  a.Description,
		Question:     mediaToDoc(a.Question),
		Difficulty:   string(a.Difficulty),
		TimeEstimate: a.TimeEstimate,
	}

	switch b := a.Body.(type) {
	case MultipleChoice:
		for _, o := range b.Options {
			doc.Options = append(doc.Options, optionDoc{mediaDoc: mediaToDoc(o.MediaElement), IsCorrect: o.IsCorrect})
		}
	case FillInBlanks:
		doc.WordBlocks = b.WordBlocks
	case Ordering:
		for _, it := range b.Items {
			doc.Items = append(doc.Items, mediaToDoc(it))
		}
	case Dialogue:
		for _, it := range b.Items {
			doc.Items = append(doc.Items, mediaToDoc(it))
		}
	case MatchImage:
		for _, p := range b.Pairs {
			doc.Pairs = append(doc.Pairs, pairDoc{mediaDoc: mediaToDoc(p.MediaElement), Image: p.Image})
		}
	}

	return json.Marshal(doc)
}

// UnmarshalJSON reads the superset wire shape, keeping only the fields
// relevant to the document's type.
func (a *Activity) UnmarshalJSON(data []byte) error {
	var doc activityDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	a.ID = doc.ID
	a.Type = ActivityType(doc.Type)
	a.Title = doc.Title
	a.Description = doc.Description
	a.Question = docToMedia(doc.Question)
	a.Difficulty = Difficulty(doc.Difficulty)
	a.TimeEstimate = doc.TimeEstimate

	switch a.Type {
	case TypeMultipleChoice:
		body := MultipleChoice{}
		for _, o := range doc.Options {
			body.Options = append(body.Options, Option{MediaElement: docToMedia(o.mediaDoc), IsCorrect: o.IsCorrect})
		}
		a.Body = body
	case TypeFillInBlanks:
		a.Body = FillInBlanks{WordBlocks: doc.WordBlocks}
	case TypeOrdering:
		body := Ordering{}
		for _, it := range doc.Items {
			body.Items = append(body.Items, docToMedia(it))
		}
		a.Body = body
	case TypeDialogue:
		body := Dialogue{}
		for _, it := range doc.Items {
			body.Items = append(body.Items, docToMedia(it))
		}
		a.Body = body
	case TypeMatchImage:
		body := MatchImage{}
		for _, p := range doc.Pairs {
			body.Pairs = append(body.Pairs, Pair{MediaElement: docToMedia(p.mediaDoc), Image: p.Image})
		}
		a.Body = body
	}

	return nil
}

// MarshalJSON writes the lesson in the wire document shape.
func (l Lesson) MarshalJSON() ([]byte, error) {
	doc := lessonDoc{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Level:       l.Level,
		Objectives:  l.Objectives,
		IntroParts:  l.IntroParts,
		Tags:        l.Tags,
		IsSaved:     l.IsSaved,
		IsPublished: l.IsPublished,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	for _, a := range l.Activities {
		raw, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		doc.Activities = append(doc.Activities, raw)
	}
	return json.Marshal(doc)
}

// UnmarshalJSON reads the lesson wire document shape.
func (l *Lesson) UnmarshalJSON(data []byte) error {
	var doc lessonDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	l.ID = doc.ID
	l.Title = doc.Title
	l.Description = doc.Description
	l.Level = doc.Level
	l.Objectives = doc.Objectives
	l.IntroParts = doc.IntroParts
	l.Tags = doc.Tags
	l.IsSaved = doc.IsSaved
	l.IsPublished = doc.IsPublished
	l.CreatedAt = doc.CreatedAt
	l.UpdatedAt = doc.UpdatedAt

	l.Activities = nil
	for _, raw := range doc.Activities {
		var a Activity
		if err := json.Unmarshal(raw, &a); err != nil {
			return err
		}
		l.Activities = append(l.Activities, a)
	}
	return nil
}
