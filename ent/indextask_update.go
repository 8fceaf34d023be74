// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/JanDamek/jervis-transcribe/ent/indextask"
	"github.com/JanDamek/jervis-transcribe/ent/predicate"
)

// IndexTaskUpdate is the builder for updating IndexTask entities.
type IndexTaskUpdate struct {
	config
	hooks    []Hook
	mutation *IndexTaskMutation
}

// Where appends a list predicates to the IndexTaskUpdate builder.
func (itu *IndexTaskUpdate) Where(ps ...predicate.IndexTask) *IndexTaskUpdate {
	itu.mutation.Where(ps...)
	return itu
}

// SetMeetingID sets the "meeting_id" field.
func (itu *IndexTaskUpdate) SetMeetingID(s string) *IndexTaskUpdate {
	itu.mutation.SetMeetingID(s)
	return itu
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (itu *IndexTaskUpdate) SetNillableMeetingID(s *string) *IndexTaskUpdate {
	if s != nil {
		itu.SetMeetingID(*s)
	}
	return itu
}

// SetClientID sets the "client_id" field.
func (itu *IndexTaskUpdate) SetClientID(s string) *IndexTaskUpdate {
	itu.mutation.SetClientID(s)
	return itu
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (itu *IndexTaskUpdate) SetNillableClientID(s *string) *IndexTaskUpdate {
	if s != nil {
		itu.SetClientID(*s)
	}
	return itu
}

// SetProjectID sets the "project_id" field.
func (itu *IndexTaskUpdate) SetProjectID(s string) *IndexTaskUpdate {
	itu.mutation.SetProjectID(s)
	return itu
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (itu *IndexTaskUpdate) SetNillableProjectID(s *string) *IndexTaskUpdate {
	if s != nil {
		itu.SetProjectID(*s)
	}
	return itu
}

// ClearProjectID clears the value of the "project_id" field.
func (itu *IndexTaskUpdate) ClearProjectID() *IndexTaskUpdate {
	itu.mutation.ClearProjectID()
	return itu
}

// SetTitle sets the "title" field.
func (itu *IndexTaskUpdate) SetTitle(s string) *IndexTaskUpdate {
	itu.mutation.SetTitle(s)
	return itu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (itu *IndexTaskUpdate) SetNillableTitle(s *string) *IndexTaskUpdate {
	if s != nil {
		itu.SetTitle(*s)
	}
	return itu
}

// ClearTitle clears the value of the "title" field.
func (itu *IndexTaskUpdate) ClearTitle() *IndexTaskUpdate {
	itu.mutation.ClearTitle()
	return itu
}

// SetCorrelationID sets the "correlation_id" field.
func (itu *IndexTaskUpdate) SetCorrelationID(s string) *IndexTaskUpdate {
	itu.mutation.SetCorrelationID(s)
	return itu
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (itu *IndexTaskUpdate) SetNillableCorrelationID(s *string) *IndexTaskUpdate {
	if s != nil {
		itu.SetCorrelationID(*s)
	}
	return itu
}

// SetContent sets the "content" field.
func (itu *IndexTaskUpdate) SetContent(s string) *IndexTaskUpdate {
	itu.mutation.SetContent(s)
	return itu
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (itu *IndexTaskUpdate) SetNillableContent(s *string) *IndexTaskUpdate {
	if s != nil {
		itu.SetContent(*s)
	}
	return itu
}

// SetStatus sets the "status" field.
func (itu *IndexTaskUpdate) SetStatus(i indextask.Status) *IndexTaskUpdate {
	itu.mutation.SetStatus(i)
	return itu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (itu *IndexTaskUpdate) SetNillableStatus(i *indextask.Status) *IndexTaskUpdate {
	if i != nil {
		itu.SetStatus(*i)
	}
	return itu
}

// Mutation returns the IndexTaskMutation object of the builder.
func (itu *IndexTaskUpdate) Mutation() *IndexTaskMutation {
	return itu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (itu *IndexTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, itu.sqlSave, itu.mutation, itu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (itu *IndexTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := itu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (itu *IndexTaskUpdate) Exec(ctx context.Context) error {
	_, err := itu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (itu *IndexTaskUpdate) ExecX(ctx context.Context) {
	if err := itu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (itu *IndexTaskUpdate) check() error {
	if v, ok := itu.mutation.Status(); ok {
		if err := indextask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IndexTask.status": %w`, err)}
		}
	}
	return nil
}

func (itu *IndexTaskUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := itu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(indextask.Table, indextask.Columns, sqlgraph.NewFieldSpec(indextask.FieldID, field.TypeString))
	if ps := itu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := itu.mutation.MeetingID(); ok {
		_spec.SetField(indextask.FieldMeetingID, field.TypeString, value)
	}
	if value, ok := itu.mutation.ClientID(); ok {
		_spec.SetField(indextask.FieldClientID, field.TypeString, value)
	}
	if value, ok := itu.mutation.ProjectID(); ok {
		_spec.SetField(indextask.FieldProjectID, field.TypeString, value)
	}
	if itu.mutation.ProjectIDCleared() {
		_spec.ClearField(indextask.FieldProjectID, field.TypeString)
	}
	if value, ok := itu.mutation.Title(); ok {
		_spec.SetField(indextask.FieldTitle, field.TypeString, value)
	}
	if itu.mutation.TitleCleared() {
		_spec.ClearField(indextask.FieldTitle, field.TypeString)
	}
	if value, ok := itu.mutation.CorrelationID(); ok {
		_spec.SetField(indextask.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := itu.mutation.Content(); ok {
		_spec.SetField(indextask.FieldContent, field.TypeString, value)
	}
	if value, ok := itu.mutation.Status(); ok {
		_spec.SetField(indextask.FieldStatus, field.TypeEnum, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, itu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{indextask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	itu.mutation.done = true
	return n, nil
}

// IndexTaskUpdateOne is the builder for updating a single IndexTask entity.
type IndexTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IndexTaskMutation
}

// SetMeetingID sets the "meeting_id" field.
func (ituo *IndexTaskUpdateOne) SetMeetingID(s string) *IndexTaskUpdateOne {
	ituo.mutation.SetMeetingID(s)
	return ituo
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (ituo *IndexTaskUpdateOne) SetNillableMeetingID(s *string) *IndexTaskUpdateOne {
	if s != nil {
		ituo.SetMeetingID(*s)
	}
	return ituo
}

// SetClientID sets the "client_id" field.
func (ituo *IndexTaskUpdateOne) SetClientID(s string) *IndexTaskUpdateOne {
	ituo.mutation.SetClientID(s)
	return ituo
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (ituo *IndexTaskUpdateOne) SetNillableClientID(s *string) *IndexTaskUpdateOne {
	if s != nil {
		ituo.SetClientID(*s)
	}
	return ituo
}

// SetProjectID sets the "project_id" field.
func (ituo *IndexTaskUpdateOne) SetProjectID(s string) *IndexTaskUpdateOne {
	ituo.mutation.SetProjectID(s)
	return ituo
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (ituo *IndexTaskUpdateOne) SetNillableProjectID(s *string) *IndexTaskUpdateOne {
	if s != nil {
		ituo.SetProjectID(*s)
	}
	return ituo
}

// ClearProjectID clears the value of the "project_id" field.
func (ituo *IndexTaskUpdateOne) ClearProjectID() *IndexTaskUpdateOne {
	ituo.mutation.ClearProjectID()
	return ituo
}

// SetTitle sets the "title" field.
func (ituo *IndexTaskUpdateOne) SetTitle(s string) *IndexTaskUpdateOne {
	ituo.mutation.SetTitle(s)
	return ituo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (ituo *IndexTaskUpdateOne) SetNillableTitle(s *string) *IndexTaskUpdateOne {
	if s != nil {
		ituo.SetTitle(*s)
	}
	return ituo
}

// ClearTitle clears the value of the "title" field.
func (ituo *IndexTaskUpdateOne) ClearTitle() *IndexTaskUpdateOne {
	ituo.mutation.ClearTitle()
	return ituo
}

// SetCorrelationID sets the "correlation_id" field.
func (ituo *IndexTaskUpdateOne) SetCorrelationID(s string) *IndexTaskUpdateOne {
	ituo.mutation.SetCorrelationID(s)
	return ituo
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (ituo *IndexTaskUpdateOne) SetNillableCorrelationID(s *string) *IndexTaskUpdateOne {
	if s != nil {
		ituo.SetCorrelationID(*s)
	}
	return ituo
}

// SetContent sets the "content" field.
func (ituo *IndexTaskUpdateOne) SetContent(s string) *IndexTaskUpdateOne {
	ituo.mutation.SetContent(s)
	return ituo
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (ituo *IndexTaskUpdateOne) SetNillableContent(s *string) *IndexTaskUpdateOne {
	if s != nil {
		ituo.SetContent(*s)
	}
	return ituo
}

// SetStatus sets the "status" field.
func (ituo *IndexTaskUpdateOne) SetStatus(i indextask.Status) *IndexTaskUpdateOne {
	ituo.mutation.SetStatus(i)
	return ituo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ituo *IndexTaskUpdateOne) SetNillableStatus(i *indextask.Status) *IndexTaskUpdateOne {
	if i != nil {
		ituo.SetStatus(*i)
	}
	return ituo
}

// Mutation returns the IndexTaskMutation object of the builder.
func (ituo *IndexTaskUpdateOne) Mutation() *IndexTaskMutation {
	return ituo.mutation
}

// Where appends a list predicates to the IndexTaskUpdate builder.
func (ituo *IndexTaskUpdateOne) Where(ps ...predicate.IndexTask) *IndexTaskUpdateOne {
	ituo.mutation.Where(ps...)
	return ituo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ituo *IndexTaskUpdateOne) Select(field string, fields ...string) *IndexTaskUpdateOne {
	ituo.fields = append([]string{field}, fields...)
	return ituo
}

// Save executes the query and returns the updated IndexTask entity.
func (ituo *IndexTaskUpdateOne) Save(ctx context.Context) (*IndexTask, error) {
	return withHooks(ctx, ituo.sqlSave, ituo.mutation, ituo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ituo *IndexTaskUpdateOne) SaveX(ctx context.Context) *IndexTask {
	node, err := ituo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ituo *IndexTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := ituo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ituo *IndexTaskUpdateOne) ExecX(ctx context.Context) {
	if err := ituo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ituo *IndexTaskUpdateOne) check() error {
	if v, ok := ituo.mutation.Status(); ok {
		if err := indextask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IndexTask.status": %w`, err)}
		}
	}
	return nil
}

func (ituo *IndexTaskUpdateOne) sqlSave(ctx context.Context) (_node *IndexTask, err error) {
	if err := ituo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(indextask.Table, indextask.Columns, sqlgraph.NewFieldSpec(indextask.FieldID, field.TypeString))
	id, ok := ituo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IndexTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ituo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, indextask.FieldID)
		for _, f := range fields {
			if !indextask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != indextask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ituo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ituo.mutation.MeetingID(); ok {
		_spec.SetField(indextask.FieldMeetingID, field.TypeString, value)
	}
	if value, ok := ituo.mutation.ClientID(); ok {
		_spec.SetField(indextask.FieldClientID, field.TypeString, value)
	}
	if value, ok := ituo.mutation.ProjectID(); ok {
		_spec.SetField(indextask.FieldProjectID, field.TypeString, value)
	}
	if ituo.mutation.ProjectIDCleared() {
		_spec.ClearField(indextask.FieldProjectID, field.TypeString)
	}
	if value, ok := ituo.mutation.Title(); ok {
		_spec.SetField(indextask.FieldTitle, field.TypeString, value)
	}
	if ituo.mutation.TitleCleared() {
		_spec.ClearField(indextask.FieldTitle, field.TypeString)
	}
	if value, ok := ituo.mutation.CorrelationID(); ok {
		_spec.SetField(indextask.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := ituo.mutation.Content(); ok {
		_spec.SetField(indextask.FieldContent, field.TypeString, value)
	}
	if value, ok := ituo.mutation.Status(); ok {
		_spec.SetField(indextask.FieldStatus, field.TypeEnum, value)
	}
	_node = &IndexTask{config: ituo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ituo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{indextask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ituo.mutation.done = true
	return _node, nil
}
