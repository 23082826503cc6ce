// Package suggest generates activity drafts with an LLM. Generation is
// asynchronous: the builder requests a suggestion, keeps rendering, and
// polls for the result on its tick.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dverbin/phrasal/internal/lesson"
	"github.com/dverbin/phrasal/internal/llm"
)

// Suggestion is a finished generation: a ready-to-edit activity draft
// or the error that prevented one.
type Suggestion struct {
	Activity lesson.Activity
	Err      error
}

// Service generates activity drafts asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending Suggestion
	ready   bool
}

// NewService creates an activity suggestion service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async generation. Only one suggestion is in-flight at
// a time; a new request replaces any pending result.
func (s *Service) Request(ctx context.Context, input Input) {
	go func() {
		activity, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = Suggestion{Err: err}
		if activity != nil {
			s.pending.Activity = *activity
		}
		s.ready = true
	}()
}

// Consume returns the pending suggestion if one is ready. After
// consumption the pending slot is cleared.
func (s *Service) Consume() (Suggestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Suggestion{}, false
	}
	out := s.pending
	s.pending = Suggestion{}
	s.ready = false
	return out, true
}

type phraseOutput struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

type optionOutput struct {
	phraseOutput
	IsCorrect bool `json:"is_correct"`
}

type pairOutput struct {
	phraseOutput
	Image string `json:"image"`
}

type activityOutput struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Question     phraseOutput   `json:"question"`
	Options      []optionOutput `json:"options"`
	Items        []phraseOutput `json:"items"`
	Pairs        []pairOutput   `json:"pairs"`
	WordBlocks   []string       `json:"word_blocks"`
	Difficulty   string         `json:"difficulty"`
	TimeEstimate int            `json:"time_estimate"`
}

func (s *Service) generate(ctx context.Context, input Input) (*lesson.Activity, error) {
	ctx = llm.WithPurpose(ctx, "suggest-activity")

	req := llm.Request{
		System: suggestSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSuggestUserMessage(input)},
		},
		Schema:      ActivitySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("activity suggestion: %w", err)
	}

	var out activityOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse suggestion response: %w", err)
	}

	return buildActivity(input.Type, out)
}

func buildActivity(t lesson.ActivityType, out activityOutput) (*lesson.Activity, error) {
	a := lesson.Activity{
		ID:          lesson.NewID(),
		Type:        t,
		Title:       out.Title,
		Description: out.Description,
		Question: lesson.MediaElement{
			ID:          lesson.NewID(),
			Text:        out.Question.Text,
			Translation: out.Question.Translation,
		},
		Difficulty:   lesson.Difficulty(out.Difficulty),
		TimeEstimate: out.TimeEstimate,
	}

	switch t {
	case lesson.TypeMultipleChoice:
		if len(out.Options) < 2 {
			return nil, fmt.Errorf("suggestion has %d options, need at least 2", len(out.Options))
		}
		opts := make([]lesson.Option, len(out.Options))
		for i, o := range out.Options {
			opts[i] = lesson.Option{
				MediaElement: mediaFromPhrase(o.phraseOutput),
				IsCorrect:    o.IsCorrect,
			}
		}
		a.Body = lesson.MultipleChoice{Options: opts}

	case lesson.TypeFillInBlanks:
		a.Body = lesson.FillInBlanks{WordBlocks: out.WordBlocks}

	case lesson.TypeOrdering, lesson.TypeDialogue:
		if len(out.Items) == 0 {
			return nil, fmt.Errorf("suggestion has no items")
		}
		items := make([]lesson.MediaElement, len(out.Items))
		for i, it := range out.Items {
			items[i] = mediaFromPhrase(it)
		}
		if t == lesson.TypeOrdering {
			a.Body = lesson.Ordering{Items: items}
		} else {
			a.Body = lesson.Dialogue{Items: items}
		}

	case lesson.TypeMatchImage:
		if len(out.Pairs) < 2 {
			return nil, fmt.Errorf("suggestion has %d pairs, need at least 2", len(out.Pairs))
		}
		pairs := make([]lesson.Pair, len(out.Pairs))
		for i, p := range out.Pairs {
			pairs[i] = lesson.Pair{
				MediaElement: mediaFromPhrase(p.phraseOutput),
				Image:        p.Image,
			}
		}
		a.Body = lesson.MatchImage{Pairs: pairs}

	default:
		return nil, fmt.Errorf("unknown activity type %q", t)
	}

	return &a, nil
}

func mediaFromPhrase(p phraseOutput) lesson.MediaElement {
	return lesson.MediaElement{
		ID:          lesson.NewID(),
		Text:        p.Text,
		Translation: p.Translation,
	}
}
