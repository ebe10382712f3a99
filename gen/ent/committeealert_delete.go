// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/propertyops/asset-governor/gen/ent/committeealert"
	"github.com/propertyops/asset-governor/gen/ent/predicate"
)

// CommitteeAlertDelete is the builder for deleting a CommitteeAlert entity.
type CommitteeAlertDelete struct {
	config
	hooks    []Hook
	mutation *CommitteeAlertMutation
}

// Where appends a list predicates to the CommitteeAlertDelete builder.
func (_d *CommitteeAlertDelete) Where(ps ...predicate.CommitteeAlert) *CommitteeAlertDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CommitteeAlertDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CommitteeAlertDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CommitteeAlertDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(committeealert.Table, sqlgraph.NewFieldSpec(committeealert.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CommitteeAlertDeleteOne is the builder for deleting a single CommitteeAlert entity.
type CommitteeAlertDeleteOne struct {
	_d *CommitteeAlertDelete
}

// Where appends a list predicates to the CommitteeAlertDelete builder.
func (_d *CommitteeAlertDeleteOne) Where(ps ...predicate.CommitteeAlert) *CommitteeAlertDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CommitteeAlertDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{committeealert.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CommitteeAlertDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
