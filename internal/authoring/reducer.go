package authoring

import (
	"time"

	"github.com/dverbin/phrasal/internal/editor"
	"github.com/dverbin/phrasal/internal/lesson"
)

// Reduce applies one action to the authoring state and returns the next
// state plus the side effect the caller must perform. It is a pure
// transition function: illegal actions are no-ops, never errors, and the
// input state is not mutated.
//
// Pure view changes (navigation, entering or cancelling a draft) do not
// stamp the lesson or trigger persistence. Every lesson mutation stamps
// UpdatedAt and, once the lesson holds at least one activity, asks the
// caller to upsert it.
func Reduce(s State, a Action) (State, Effect) {
	switch act := a.(type) {
	case ResetLesson:
		if s.View != ViewList {
			return s, EffectNone
		}
		s.Lesson = lesson.New()
		s.Draft = nil
		s.View = ViewSetup
		return s, EffectNone

	case LoadLesson:
		if s.View != ViewList {
			return s, EffectNone
		}
		s.Lesson = act.Lesson.Clone()
		s.Draft = nil
		s.View = ViewSetup
		return s, EffectNone

	case BackToList:
		s.View = ViewList
		s.Draft = nil
		return s, EffectNone

	case ContinueToBuilder:
		if s.View != ViewSetup {
			return s, EffectNone
		}
		s.View = ViewBuilder
		return s, EffectNone

	case BackToSetup:
		if s.View != ViewBuilder {
			return s, EffectNone
		}
		s.View = ViewSetup
		s.Draft = nil
		return s, EffectNone

	case SetField:
		s.Lesson = s.Lesson.Clone()
		switch act.Field {
		case FieldTitle:
			s.Lesson.Title = act.Value
		case FieldDescription:
			s.Lesson.Description = act.Value
		case FieldLevel:
			s.Lesson.Level = act.Value
		default:
			return s, EffectNone
		}
		return s.committed()

	case SetObjectives:
		s.Lesson = s.Lesson.Clone()
		s.Lesson.Objectives = append([]string(nil), act.Objectives...)
		return s.committed()

	case SetIntroParts:
		s.Lesson = s.Lesson.Clone()
		s.Lesson.IntroParts = append([]string(nil), act.Parts...)
		return s.committed()

	case SetTags:
		s.Lesson = s.Lesson.Clone()
		s.Lesson.Tags = append([]string(nil), act.Tags...)
		return s.committed()

	case AddActivity:
		s.Lesson = s.Lesson.Clone()
		added := act.Activity.Clone()
		added.ID = lesson.NewID()
		s.Lesson.Activities = append(s.Lesson.Activities, added)
		return s.committed()

	case UpdateActivity:
		i := s.Lesson.ActivityIndex(act.Activity.ID)
		if i < 0 {
			return s, EffectNone
		}
		s.Lesson = s.Lesson.Clone()
		replacement := act.Activity.Clone()
		replacement.ID = s.Lesson.Activities[i].ID
		s.Lesson.Activities[i] = replacement
		return s.committed()

	case DeleteActivity:
		i := s.Lesson.ActivityIndex(act.ID)
		if i < 0 {
			return s, EffectNone
		}
		s.Lesson = s.Lesson.Clone()
		s.Lesson.Activities = append(s.Lesson.Activities[:i], s.Lesson.Activities[i+1:]...)
		return s.committed()

	case ReorderActivities:
		s.Lesson = s.Lesson.Clone()
		s.Lesson.Activities = make([]lesson.Activity, len(act.Activities))
		for i, a := range act.Activities {
			s.Lesson.Activities[i] = a.Clone()
		}
		return s.committed()

	case StartDraft:
		if s.View != ViewBuilder || s.Draft != nil {
			return s, EffectNone
		}
		d := editor.New(act.Type)
		s.Draft = &d
		s.draftIsNew = true
		return s, EffectNone

	case EditActivity:
		if s.View != ViewBuilder || s.Draft != nil {
			return s, EffectNone
		}
		i := s.Lesson.ActivityIndex(act.ID)
		if i < 0 {
			return s, EffectNone
		}
		d := editor.FromActivity(s.Lesson.Activities[i])
		s.Draft = &d
		s.draftIsNew = false
		return s, EffectNone

	case EditDraft:
		if s.Draft == nil {
			return s, EffectNone
		}
		d := editor.Apply(*s.Draft, act.Op)
		s.Draft = &d
		return s, EffectNone

	case SaveDraft:
		if s.Draft == nil {
			return s, EffectNone
		}
		s.Lesson = s.Lesson.Clone()
		saved := s.Draft.Activity.Clone()
		if s.draftIsNew {
			s.Lesson.Activities = append(s.Lesson.Activities, saved)
		} else if i := s.Lesson.ActivityIndex(saved.ID); i >= 0 {
			s.Lesson.Activities[i] = saved
		} else {
			s.Lesson.Activities = append(s.Lesson.Activities, saved)
		}
		s.Draft = nil
		return s.committed()

	case CancelDraft:
		s.Draft = nil
		return s, EffectNone
	}

	return s, EffectNone
}

// committed stamps the lesson after a mutation and decides whether the
// caller should persist. UpdatedAt never moves backwards.
func (s State) committed() (State, Effect) {
	now := time.Now()
	if now.After(s.Lesson.UpdatedAt) {
		s.Lesson.UpdatedAt = now
	}

	if len(s.Lesson.Activities) == 0 {
		return s, EffectNone
	}
	s.Lesson.IsSaved = true
	return s, EffectPersist
}
