// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/propertyops/asset-governor/gen/ent/extractedmetric"
	"github.com/propertyops/asset-governor/gen/ent/predicate"
)

// ExtractedMetricDelete is the builder for deleting a ExtractedMetric entity.
type ExtractedMetricDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedMetricMutation
}

// Where appends a list predicates to the ExtractedMetricDelete builder.
func (_d *ExtractedMetricDelete) Where(ps ...predicate.ExtractedMetric) *ExtractedMetricDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedMetricDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedMetricDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedMetricDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedmetric.Table, sqlgraph.NewFieldSpec(extractedmetric.FieldID, field.TypeUUID))
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

// ExtractedMetricDeleteOne is the builder for deleting a single ExtractedMetric entity.
type ExtractedMetricDeleteOne struct {
	_d *ExtractedMetricDelete
}

// Where appends a list predicates to the ExtractedMetricDelete builder.
func (_d *ExtractedMetricDeleteOne) Where(ps ...predicate.ExtractedMetric) *ExtractedMetricDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedMetricDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedmetric.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedMetricDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
