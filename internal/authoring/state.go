// Package authoring implements the lesson authoring state machine: a pure
// reducer over the lesson being composed, its current view and the nested
// activity draft sub-state.
package authoring

import (
	"github.com/dverbin/phrasal/internal/editor"
	"github.com/dverbin/phrasal/internal/lesson"
)

// View is the authoring machine's top-level state.
type View string

const (
	ViewList    View = "list"    // saved-lesson list
	ViewSetup   View = "setup"   // lesson metadata form
	ViewBuilder View = "builder" // activity composition
)

// State is the full authoring state. Draft is non-nil only while an
// activity is being edited; it is entered on StartDraft/EditActivity and
// left on SaveDraft/CancelDraft.
type State struct {
	View   View
	Lesson lesson.Lesson
	Draft  *editor.Draft

	// draftIsNew marks whether saving the draft appends a new activity or
	// replaces an existing one by ID.
	draftIsNew bool
}

// NewState returns the machine's initial state: the lesson list, no
// lesson loaded.
func NewState() State {
	return State{View: ViewList}
}

// Editing reports whether the draft sub-state is active.
func (s State) Editing() bool {
	return s.Draft != nil
}

// Effect tells the caller which side effect to perform after a
// transition. Persistence is deliberately not performed inside the
// reducer; the caller owns the store.
type Effect int

const (
	// EffectNone means no side effect is required.
	EffectNone Effect = iota

	// EffectPersist means the lesson changed and should be upserted into
	// the lesson store.
	EffectPersist
)
