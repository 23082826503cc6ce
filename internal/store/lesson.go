package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dverbin/phrasal/ent"
	entlesson "github.com/dverbin/phrasal/ent/lesson"
	"github.com/dverbin/phrasal/internal/lesson"
)

// lessonRepo implements LessonRepo using the ent client.
type lessonRepo struct {
	client *ent.Client
}

// ErrNotFound is returned by Get for unknown lesson IDs.
var ErrNotFound = fmt.Errorf("lesson not found")

func (r *lessonRepo) Upsert(ctx context.Context, l lesson.Lesson) error {
	doc, err := lessonToMap(l)
	if err != nil {
		return fmt.Errorf("marshal lesson document: %w", err)
	}

	existing, err := r.client.Lesson.Query().
		Where(entlesson.LessonID(l.ID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetTitle(l.Title).
			SetLevel(l.Level).
			SetActivityCount(len(l.Activities)).
			SetPublished(l.IsPublished).
			SetDocument(doc).
			SetUpdatedAt(l.UpdatedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update lesson %s: %w", l.ID, err)
		}
		return nil

	case ent.IsNotFound(err):
		_, err = r.client.Lesson.Create().
			SetLessonID(l.ID).
			SetTitle(l.Title).
			SetLevel(l.Level).
			SetActivityCount(len(l.Activities)).
			SetPublished(l.IsPublished).
			SetDocument(doc).
			SetCreatedAt(l.CreatedAt).
			SetUpdatedAt(l.UpdatedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create lesson %s: %w", l.ID, err)
		}
		return nil

	default:
		return fmt.Errorf("query lesson %s: %w", l.ID, err)
	}
}

func (r *lessonRepo) Get(ctx context.Context, id string) (lesson.Lesson, error) {
	row, err := r.client.Lesson.Query().
		Where(entlesson.LessonID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return lesson.Lesson{}, ErrNotFound
		}
		return lesson.Lesson{}, fmt.Errorf("query lesson %s: %w", id, err)
	}
	return mapToLesson(row.Document)
}

func (r *lessonRepo) LoadAll(ctx context.Context) ([]lesson.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Order(ent.Desc(entlesson.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}

	out := make([]lesson.Lesson, 0, len(rows))
	for _, row := range rows {
		l, err := mapToLesson(row.Document)
		if err != nil {
			return nil, fmt.Errorf("decode lesson %s: %w", row.LessonID, err)
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *lessonRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Lesson.Delete().
		Where(entlesson.LessonID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete lesson %s: %w", id, err)
	}
	return nil
}

// lessonToMap converts a lesson to map[string]any for ent JSON storage,
// going through the wire codec so stored documents match exports.
func lessonToMap(l lesson.Lesson) (map[string]any, error) {
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToLesson decodes a stored document back into a lesson.
func mapToLesson(doc map[string]any) (lesson.Lesson, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return lesson.Lesson{}, err
	}
	var l lesson.Lesson
	if err := json.Unmarshal(raw, &l); err != nil {
		return lesson.Lesson{}, err
	}
	return l, nil
}
