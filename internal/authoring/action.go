package authoring

import (
	"github.com/dverbin/phrasal/internal/editor"
	"github.com/dverbin/phrasal/internal/lesson"
)

// Action is one input to the authoring machine. The set is sealed; the
// reducer ignores actions that are illegal in the current state instead
// of failing.
type Action interface {
	isAction()
}

// ResetLesson starts a brand-new lesson and moves to the setup view.
type ResetLesson struct{}

// LoadLesson opens a stored lesson for editing in the setup view.
type LoadLesson struct{ Lesson lesson.Lesson }

// BackToList abandons navigation back to the lesson list.
type BackToList struct{}

// ContinueToBuilder moves from setup to the builder. Setup fields are not
// gated; validation applies to activities, not lesson metadata.
type ContinueToBuilder struct{}

// BackToSetup moves from the builder back to setup.
type BackToSetup struct{}

// LessonField names a top-level editable lesson field.
type LessonField string

const (
	FieldTitle       LessonField = "title"
	FieldDescription LessonField = "description"
	FieldLevel       LessonField = "level"
)

// SetField updates one top-level lesson field.
type SetField struct {
	Field LessonField
	Value string
}

// SetObjectives replaces the lesson's objective list.
type SetObjectives struct{ Objectives []string }

// SetIntroParts replaces the lesson's intro paragraphs.
type SetIntroParts struct{ Parts []string }

// SetTags replaces the lesson's tags.
type SetTags struct{ Tags []string }

// AddActivity appends an already-validated activity, assigning a fresh ID.
type AddActivity struct{ Activity lesson.Activity }

// UpdateActivity replaces the activity with the same ID, preserving the ID.
type UpdateActivity struct{ Activity lesson.Activity }

// DeleteActivity removes an activity by ID. Unknown IDs are ignored.
// Confirmation is a collaborator concern handled before dispatch.
type DeleteActivity struct{ ID string }

// ReorderActivities replaces the ordered activity list wholesale. The
// order is caller-supplied; the reducer never sorts.
type ReorderActivities struct{ Activities []lesson.Activity }

// StartDraft enters the draft sub-state with a new activity of the given
// type.
type StartDraft struct{ Type lesson.ActivityType }

// EditActivity enters the draft sub-state editing an existing activity.
type EditActivity struct{ ID string }

// EditDraft applies one editor operation to the active draft.
type EditDraft struct{ Op editor.Op }

// SaveDraft commits the active draft to the lesson (append or replace)
// and leaves the draft sub-state. The caller validates before dispatch;
// the reducer itself never rejects a transition.
type SaveDraft struct{}

// CancelDraft discards the active draft and leaves the draft sub-state.
type CancelDraft struct{}

func (ResetLesson) isAction()       {}
func (LoadLesson) isAction()        {}
func (BackToList) isAction()        {}
func (ContinueToBuilder) isAction() {}
func (BackToSetup) isAction()       {}
func (SetField) isAction()          {}
func (SetObjectives) isAction()     {}
func (SetIntroParts) isAction()     {}
func (SetTags) isAction()           {}
func (AddActivity) isAction()       {}
func (UpdateActivity) isAction()    {}
func (DeleteActivity) isAction()    {}
func (ReorderActivities) isAction() {}
func (StartDraft) isAction()        {}
func (EditActivity) isAction()      {}
func (EditDraft) isAction()         {}
func (SaveDraft) isAction()         {}
func (CancelDraft) isAction()       {}
