// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dverbin/phrasal/ent/lesson"
	"github.com/dverbin/phrasal/ent/predicate"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LessonUpdate) SetLevel(v string) *LessonUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableLevel(v *string) *LessonUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetActivityCount sets the "activity_count" field.
func (_u *LessonUpdate) SetActivityCount(v int) *LessonUpdate {
	_u.mutation.ResetActivityCount()
	_u.mutation.SetActivityCount(v)
	return _u
}

// SetNillableActivityCount sets the "activity_count" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableActivityCount(v *int) *LessonUpdate {
	if v != nil {
		_u.SetActivityCount(*v)
	}
	return _u
}

// AddActivityCount adds value to the "activity_count" field.
func (_u *LessonUpdate) AddActivityCount(v int) *LessonUpdate {
	_u.mutation.AddActivityCount(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *LessonUpdate) SetPublished(v bool) *LessonUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *LessonUpdate) SetNillablePublished(v *bool) *LessonUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetDocument sets the "document" field.
func (_u *LessonUpdate) SetDocument(v map[string]interface{}) *LessonUpdate {
	_u.mutation.SetDocument(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonUpdate) SetUpdatedAt(v time.Time) *LessonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableUpdatedAt(v *time.Time) *LessonUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(lesson.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityCount(); ok {
		_spec.SetField(lesson.FieldActivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActivityCount(); ok {
		_spec.AddField(lesson.FieldActivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(lesson.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(lesson.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LessonUpdateOne) SetLevel(v string) *LessonUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableLevel(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetActivityCount sets the "activity_count" field.
func (_u *LessonUpdateOne) SetActivityCount(v int) *LessonUpdateOne {
	_u.mutation.ResetActivityCount()
	_u.mutation.SetActivityCount(v)
	return _u
}

// SetNillableActivityCount sets the "activity_count" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableActivityCount(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetActivityCount(*v)
	}
	return _u
}

// AddActivityCount adds value to the "activity_count" field.
func (_u *LessonUpdateOne) AddActivityCount(v int) *LessonUpdateOne {
	_u.mutation.AddActivityCount(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *LessonUpdateOne) SetPublished(v bool) *LessonUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillablePublished(v *bool) *LessonUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetDocument sets the "document" field.
func (_u *LessonUpdateOne) SetDocument(v map[string]interface{}) *LessonUpdateOne {
	_u.mutation.SetDocument(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonUpdateOne) SetUpdatedAt(v time.Time) *LessonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableUpdatedAt(v *time.Time) *LessonUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(lesson.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityCount(); ok {
		_spec.SetField(lesson.FieldActivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActivityCount(); ok {
		_spec.AddField(lesson.FieldActivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(lesson.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(lesson.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
