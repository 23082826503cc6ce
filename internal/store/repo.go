package store

import (
	"context"
	"time"

	"github.com/dverbin/phrasal/internal/lesson"
)

// LessonRepo is the persistent lesson collection, keyed by lesson ID.
// Upsert is idempotent: the same ID overwrites the stored revision. The
// authoring layer calls it after every committed state change once the
// lesson holds at least one activity.
type LessonRepo interface {
	// Upsert inserts or replaces the lesson with the same ID.
	Upsert(ctx context.Context, l lesson.Lesson) error

	// Get returns the lesson with the given ID.
	Get(ctx context.Context, id string) (lesson.Lesson, error)

	// LoadAll returns every stored lesson, most recently updated first.
	LoadAll(ctx context.Context) ([]lesson.Lesson, error)

	// Delete removes the lesson with the given ID. Unknown IDs are not
	// an error.
	Delete(ctx context.Context, id string) error
}

// LLMRequestEventData captures one call to the suggestion provider.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored event row.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns the most recent events, newest first.
	ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)

	// UsageByPurpose aggregates token usage per purpose label.
	UsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
}
