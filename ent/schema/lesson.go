package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson stores one authored lesson document, keyed by the lesson's own
// ID. The full wire document is kept as JSON; the scalar columns exist
// for listing without decoding every document.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Application-level lesson ID (UUID), the upsert key"),
		field.String("title").
			Default(""),
		field.String("level").
			Default(""),
		field.Int("activity_count").
			Default(0),
		field.Bool("published").
			Default(false),
		field.JSON("document", map[string]any{}).
			Comment("Full lesson wire document as JSON"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("updated_at"),
	}
}
