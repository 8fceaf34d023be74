// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/JanDamek/jervis-transcribe/ent/indextask"
)

// IndexTaskCreate is the builder for creating a IndexTask entity.
type IndexTaskCreate struct {
	config
	mutation *IndexTaskMutation
	hooks    []Hook
}

// SetMeetingID sets the "meeting_id" field.
func (itc *IndexTaskCreate) SetMeetingID(s string) *IndexTaskCreate {
	itc.mutation.SetMeetingID(s)
	return itc
}

// SetClientID sets the "client_id" field.
func (itc *IndexTaskCreate) SetClientID(s string) *IndexTaskCreate {
	itc.mutation.SetClientID(s)
	return itc
}

// SetProjectID sets the "project_id" field.
func (itc *IndexTaskCreate) SetProjectID(s string) *IndexTaskCreate {
	itc.mutation.SetProjectID(s)
	return itc
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (itc *IndexTaskCreate) SetNillableProjectID(s *string) *IndexTaskCreate {
	if s != nil {
		itc.SetProjectID(*s)
	}
	return itc
}

// SetTitle sets the "title" field.
func (itc *IndexTaskCreate) SetTitle(s string) *IndexTaskCreate {
	itc.mutation.SetTitle(s)
	return itc
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (itc *IndexTaskCreate) SetNillableTitle(s *string) *IndexTaskCreate {
	if s != nil {
		itc.SetTitle(*s)
	}
	return itc
}

// SetCorrelationID sets the "correlation_id" field.
func (itc *IndexTaskCreate) SetCorrelationID(s string) *IndexTaskCreate {
	itc.mutation.SetCorrelationID(s)
	return itc
}

// SetContent sets the "content" field.
func (itc *IndexTaskCreate) SetContent(s string) *IndexTaskCreate {
	itc.mutation.SetContent(s)
	return itc
}

// SetStatus sets the "status" field.
func (itc *IndexTaskCreate) SetStatus(i indextask.Status) *IndexTaskCreate {
	itc.mutation.SetStatus(i)
	return itc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (itc *IndexTaskCreate) SetNillableStatus(i *indextask.Status) *IndexTaskCreate {
	if i != nil {
		itc.SetStatus(*i)
	}
	return itc
}

// SetCreatedAt sets the "created_at" field.
func (itc *IndexTaskCreate) SetCreatedAt(t time.Time) *IndexTaskCreate {
	itc.mutation.SetCreatedAt(t)
	return itc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (itc *IndexTaskCreate) SetNillableCreatedAt(t *time.Time) *IndexTaskCreate {
	if t != nil {
		itc.SetCreatedAt(*t)
	}
	return itc
}

// SetID sets the "id" field.
func (itc *IndexTaskCreate) SetID(s string) *IndexTaskCreate {
	itc.mutation.SetID(s)
	return itc
}

// Mutation returns the IndexTaskMutation object of the builder.
func (itc *IndexTaskCreate) Mutation() *IndexTaskMutation {
	return itc.mutation
}

// Save creates the IndexTask in the database.
func (itc *IndexTaskCreate) Save(ctx context.Context) (*IndexTask, error) {
	itc.defaults()
	return withHooks(ctx, itc.sqlSave, itc.mutation, itc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (itc *IndexTaskCreate) SaveX(ctx context.Context) *IndexTask {
	v, err := itc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (itc *IndexTaskCreate) Exec(ctx context.Context) error {
	_, err := itc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (itc *IndexTaskCreate) ExecX(ctx context.Context) {
	if err := itc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (itc *IndexTaskCreate) defaults() {
	if _, ok := itc.mutation.Status(); !ok {
		v := indextask.DefaultStatus
		itc.mutation.SetStatus(v)
	}
	if _, ok := itc.mutation.CreatedAt(); !ok {
		v := indextask.DefaultCreatedAt()
		itc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (itc *IndexTaskCreate) check() error {
	if _, ok := itc.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`ent: missing required field "IndexTask.meeting_id"`)}
	}
	if _, ok := itc.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "IndexTask.client_id"`)}
	}
	if _, ok := itc.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "IndexTask.correlation_id"`)}
	}
	if _, ok := itc.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "IndexTask.content"`)}
	}
	if _, ok := itc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IndexTask.status"`)}
	}
	if v, ok := itc.mutation.Status(); ok {
		if err := indextask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IndexTask.status": %w`, err)}
		}
	}
	if _, ok := itc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IndexTask.created_at"`)}
	}
	return nil
}

func (itc *IndexTaskCreate) sqlSave(ctx context.Context) (*IndexTask, error) {
	if err := itc.check(); err != nil {
		return nil, err
	}
	_node, _spec := itc.createSpec()
	if err := sqlgraph.CreateNode(ctx, itc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected IndexTask.ID type: %T", _spec.ID.Value)
		}
	}
	itc.mutation.id = &_node.ID
	itc.mutation.done = true
	return _node, nil
}

func (itc *IndexTaskCreate) createSpec() (*IndexTask, *sqlgraph.CreateSpec) {
	var (
		_node = &IndexTask{config: itc.config}
		_spec = sqlgraph.NewCreateSpec(indextask.Table, sqlgraph.NewFieldSpec(indextask.FieldID, field.TypeString))
	)
	if id, ok := itc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := itc.mutation.MeetingID(); ok {
		_spec.SetField(indextask.FieldMeetingID, field.TypeString, value)
		_node.MeetingID = value
	}
	if value, ok := itc.mutation.ClientID(); ok {
		_spec.SetField(indextask.FieldClientID, field.TypeString, value)
		_node.ClientID = value
	}
	if value, ok := itc.mutation.ProjectID(); ok {
		_spec.SetField(indextask.FieldProjectID, field.TypeString, value)
		_node.ProjectID = &value
	}
	if value, ok := itc.mutation.Title(); ok {
		_spec.SetField(indextask.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := itc.mutation.CorrelationID(); ok {
		_spec.SetField(indextask.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := itc.mutation.Content(); ok {
		_spec.SetField(indextask.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := itc.mutation.Status(); ok {
		_spec.SetField(indextask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := itc.mutation.CreatedAt(); ok {
		_spec.SetField(indextask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// IndexTaskCreateBulk is the builder for creating many IndexTask entities in bulk.
type IndexTaskCreateBulk struct {
	config
	err      error
	builders []*IndexTaskCreate
}

// Save creates the IndexTask entities in the database.
func (itcb *IndexTaskCreateBulk) Save(ctx context.Context) ([]*IndexTask, error) {
	if itcb.err != nil {
		return nil, itcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(itcb.builders))
	nodes := make([]*IndexTask, len(itcb.builders))
	mutators := make([]Mutator, len(itcb.builders))
	for i := range itcb.builders {
		func(i int, root context.Context) {
			builder := itcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IndexTaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, itcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, itcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, itcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (itcb *IndexTaskCreateBulk) SaveX(ctx context.Context) []*IndexTask {
	v, err := itcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (itcb *IndexTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := itcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (itcb *IndexTaskCreateBulk) ExecX(ctx context.Context) {
	if err := itcb.Exec(ctx); err != nil {
		panic(err)
	}
}
