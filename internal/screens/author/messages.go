package author

import (
	"github.com/dverbin/phrasal/internal/audio"
	"github.com/dverbin/phrasal/internal/editor"
	"github.com/dverbin/phrasal/internal/lesson"
)

// lessonsLoadedMsg is sent when the saved-lesson list has been read from
// the store.
type lessonsLoadedMsg struct {
	Lessons []lesson.Lesson
	Err     error
}

// persistDoneMsg is sent when an async lesson upsert completes.
type persistDoneMsg struct {
	Err error
}

// deleteDoneMsg is sent when an async lesson delete completes.
type deleteDoneMsg struct {
	ID  string
	Err error
}

// suggestTickMsg polls the suggestion service for a finished draft.
type suggestTickMsg struct{}

// audioAttachedMsg is sent when an audio file has been copied into the
// media library.
type audioAttachedMsg struct {
	Target     editor.Target
	Index      int
	Attachment audio.Attachment
	Err        error
}
