// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/JanDamek/jervis-transcribe/ent/indextask"
	"github.com/JanDamek/jervis-transcribe/ent/predicate"
)

// IndexTaskDelete is the builder for deleting a IndexTask entity.
type IndexTaskDelete struct {
	config
	hooks    []Hook
	mutation *IndexTaskMutation
}

// Where appends a list predicates to the IndexTaskDelete builder.
func (itd *IndexTaskDelete) Where(ps ...predicate.IndexTask) *IndexTaskDelete {
	itd.mutation.Where(ps...)
	return itd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (itd *IndexTaskDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, itd.sqlExec, itd.mutation, itd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (itd *IndexTaskDelete) ExecX(ctx context.Context) int {
	n, err := itd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (itd *IndexTaskDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(indextask.Table, sqlgraph.NewFieldSpec(indextask.FieldID, field.TypeString))
	if ps := itd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, itd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	itd.mutation.done = true
	return affected, err
}

// IndexTaskDeleteOne is the builder for deleting a single IndexTask entity.
type IndexTaskDeleteOne struct {
	itd *IndexTaskDelete
}

// Where appends a list predicates to the IndexTaskDelete builder.
func (itdo *IndexTaskDeleteOne) Where(ps ...predicate.IndexTask) *IndexTaskDeleteOne {
	itdo.itd.mutation.Where(ps...)
	return itdo
}

// Exec executes the deletion query.
func (itdo *IndexTaskDeleteOne) Exec(ctx context.Context) error {
	n, err := itdo.itd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{indextask.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (itdo *IndexTaskDeleteOne) ExecX(ctx context.Context) {
	if err := itdo.Exec(ctx); err != nil {
		panic(err)
	}
}
