package editor

import (
	"strings"

	"github.com/dverbin/phrasal/internal/blanks"
	"github.com/dverbin/phrasal/internal/lesson"
)

// ValidationError describes one reason an activity cannot be saved.
type ValidationError struct {
	Field   string // which part of the draft the rule concerns
	Message string // author-facing description
}

func (e ValidationError) Error() string {
	return e.Message
}

// Validate checks an activity draft against the save rules and returns
// every violation, in a fixed order. An empty result means the activity
// may be committed to its lesson. Pure function of the draft.
func Validate(a lesson.Activity) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(a.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "Title is required"})
	}
	if strings.TrimSpace(a.Question.Text) == "" {
		errs = append(errs, ValidationError{Field: "question", Message: "Question text is required"})
	}

	switch a.Type {
	case lesson.TypeMultipleChoice:
		withText := 0
		hasCorrect := false
		for _, o := range a.Options() {
			if strings.TrimSpace(o.Text) != "" {
				withText++
			}
			if o.IsCorrect {
				hasCorrect = true
			}
		}
		if withText < 2 {
			errs = append(errs, ValidationError{Field: "options", Message: "At least 2 options with text are required"})
		}
		if !hasCorrect {
			errs = append(errs, ValidationError{Field: "options", Message: "One option must be marked as correct"})
		}

	case lesson.TypeOrdering, lesson.TypeDialogue:
		if len(a.Items()) < 2 {
			errs = append(errs, ValidationError{Field: "items", Message: "At least 2 items are required"})
		}

	case lesson.TypeMatchImage:
		if len(a.Pairs()) < 2 {
			errs = append(errs, ValidationError{Field: "pairs", Message: "At least 2 pairs are required"})
		}

	case lesson.TypeFillInBlanks:
		if blanks.Tokenize(a.Question.Text).Blanks() == 0 {
			errs = append(errs, ValidationError{Field: "question", Message: "Question text must contain at least one {blank}"})
		}
	}

	return errs
}

// Messages flattens validation errors to their author-facing strings.
func Messages(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}
