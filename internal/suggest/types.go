package suggest

import "github.com/dverbin/phrasal/internal/lesson"

// Input describes the lesson context a suggestion is generated for.
type Input struct {
	// Type is the activity type to generate.
	Type lesson.ActivityType

	// Topic is the author's free-text prompt for what the activity
	// should cover. Empty means "continue the lesson's theme".
	Topic string

	// Lesson metadata the model can draw on.
	LessonTitle       string
	LessonDescription string
	Level             string
	Objectives        []string

	// ExistingTitles lists the titles of activities already in the
	// lesson so the model avoids repeating them.
	ExistingTitles []string
}
