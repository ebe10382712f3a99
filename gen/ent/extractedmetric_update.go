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
	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/extractedmetric"
	"github.com/propertyops/asset-governor/gen/ent/predicate"
)

// ExtractedMetricUpdate is the builder for updating ExtractedMetric entities.
type ExtractedMetricUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedMetricMutation
}

// Where appends a list predicates to the ExtractedMetricUpdate builder.
func (_u *ExtractedMetricUpdate) Where(ps ...predicate.ExtractedMetric) *ExtractedMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPropertyID sets the "property_id" field.
func (_u *ExtractedMetricUpdate) SetPropertyID(v uuid.UUID) *ExtractedMetricUpdate {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *ExtractedMetricUpdate) SetNillablePropertyID(v *uuid.UUID) *ExtractedMetricUpdate {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetMetricType sets the "metric_type" field.
func (_u *ExtractedMetricUpdate) SetMetricType(v string) *ExtractedMetricUpdate {
	_u.mutation.SetMetricType(v)
	return _u
}

// SetNillableMetricType sets the "metric_type" field if the given value is not nil.
func (_u *ExtractedMetricUpdate) SetNillableMetricType(v *string) *ExtractedMetricUpdate {
	if v != nil {
		_u.SetMetricType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ExtractedMetricUpdate) SetValue(v float64) *ExtractedMetricUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ExtractedMetricUpdate) SetNillableValue(v *float64) *ExtractedMetricUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *ExtractedMetricUpdate) AddValue(v float64) *ExtractedMetricUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetPeriod sets the "period" field.
func (_u *ExtractedMetricUpdate) SetPeriod(v string) *ExtractedMetricUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *ExtractedMetricUpdate) SetNillablePeriod(v *string) *ExtractedMetricUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_u *ExtractedMetricUpdate) SetSourceDocumentID(v uuid.UUID) *ExtractedMetricUpdate {
	_u.mutation.SetSourceDocumentID(v)
	return _u
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_u *ExtractedMetricUpdate) SetNillableSourceDocumentID(v *uuid.UUID) *ExtractedMetricUpdate {
	if v != nil {
		_u.SetSourceDocumentID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ExtractedMetricUpdate) SetVersion(v int) *ExtractedMetricUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ExtractedMetricUpdate) SetNillableVersion(v *int) *ExtractedMetricUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ExtractedMetricUpdate) AddVersion(v int) *ExtractedMetricUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *ExtractedMetricUpdate) SetExtractedAt(v time.Time) *ExtractedMetricUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *ExtractedMetricUpdate) SetNillableExtractedAt(v *time.Time) *ExtractedMetricUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// Mutation returns the ExtractedMetricMutation object of the builder.
func (_u *ExtractedMetricUpdate) Mutation() *ExtractedMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedMetricUpdate) check() error {
	if v, ok := _u.mutation.MetricType(); ok {
		if err := extractedmetric.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedMetric.metric_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Period(); ok {
		if err := extractedmetric.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "ExtractedMetric.period": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractedMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedmetric.Table, extractedmetric.Columns, sqlgraph.NewFieldSpec(extractedmetric.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PropertyID(); ok {
		_spec.SetField(extractedmetric.FieldPropertyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MetricType(); ok {
		_spec.SetField(extractedmetric.FieldMetricType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(extractedmetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(extractedmetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(extractedmetric.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceDocumentID(); ok {
		_spec.SetField(extractedmetric.FieldSourceDocumentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(extractedmetric.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(extractedmetric.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(extractedmetric.FieldExtractedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedMetricUpdateOne is the builder for updating a single ExtractedMetric entity.
type ExtractedMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedMetricMutation
}

// SetPropertyID sets the "property_id" field.
func (_u *ExtractedMetricUpdateOne) SetPropertyID(v uuid.UUID) *ExtractedMetricUpdateOne {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *ExtractedMetricUpdateOne) SetNillablePropertyID(v *uuid.UUID) *ExtractedMetricUpdateOne {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetMetricType sets the "metric_type" field.
func (_u *ExtractedMetricUpdateOne) SetMetricType(v string) *ExtractedMetricUpdateOne {
	_u.mutation.SetMetricType(v)
	return _u
}

// SetNillableMetricType sets the "metric_type" field if the given value is not nil.
func (_u *ExtractedMetricUpdateOne) SetNillableMetricType(v *string) *ExtractedMetricUpdateOne {
	if v != nil {
		_u.SetMetricType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ExtractedMetricUpdateOne) SetValue(v float64) *ExtractedMetricUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ExtractedMetricUpdateOne) SetNillableValue(v *float64) *ExtractedMetricUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *ExtractedMetricUpdateOne) AddValue(v float64) *ExtractedMetricUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetPeriod sets the "period" field.
func (_u *ExtractedMetricUpdateOne) SetPeriod(v string) *ExtractedMetricUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *ExtractedMetricUpdateOne) SetNillablePeriod(v *string) *ExtractedMetricUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_u *ExtractedMetricUpdateOne) SetSourceDocumentID(v uuid.UUID) *ExtractedMetricUpdateOne {
	_u.mutation.SetSourceDocumentID(v)
	return _u
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_u *ExtractedMetricUpdateOne) SetNillableSourceDocumentID(v *uuid.UUID) *ExtractedMetricUpdateOne {
	if v != nil {
		_u.SetSourceDocumentID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ExtractedMetricUpdateOne) SetVersion(v int) *ExtractedMetricUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ExtractedMetricUpdateOne) SetNillableVersion(v *int) *ExtractedMetricUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ExtractedMetricUpdateOne) AddVersion(v int) *ExtractedMetricUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *ExtractedMetricUpdateOne) SetExtractedAt(v time.Time) *ExtractedMetricUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *ExtractedMetricUpdateOne) SetNillableExtractedAt(v *time.Time) *ExtractedMetricUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// Mutation returns the ExtractedMetricMutation object of the builder.
func (_u *ExtractedMetricUpdateOne) Mutation() *ExtractedMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractedMetricUpdate builder.
func (_u *ExtractedMetricUpdateOne) Where(ps ...predicate.ExtractedMetric) *ExtractedMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedMetricUpdateOne) Select(field string, fields ...string) *ExtractedMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedMetric entity.
func (_u *ExtractedMetricUpdateOne) Save(ctx context.Context) (*ExtractedMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedMetricUpdateOne) SaveX(ctx context.Context) *ExtractedMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedMetricUpdateOne) check() error {
	if v, ok := _u.mutation.MetricType(); ok {
		if err := extractedmetric.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedMetric.metric_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Period(); ok {
		if err := extractedmetric.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "ExtractedMetric.period": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractedMetricUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedMetric, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedmetric.Table, extractedmetric.Columns, sqlgraph.NewFieldSpec(extractedmetric.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedmetric.FieldID)
		for _, f := range fields {
			if !extractedmetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedmetric.FieldID {
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
	if value, ok := _u.mutation.PropertyID(); ok {
		_spec.SetField(extractedmetric.FieldPropertyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MetricType(); ok {
		_spec.SetField(extractedmetric.FieldMetricType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(extractedmetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(extractedmetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(extractedmetric.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceDocumentID(); ok {
		_spec.SetField(extractedmetric.FieldSourceDocumentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(extractedmetric.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(extractedmetric.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(extractedmetric.FieldExtractedAt, field.TypeTime, value)
	}
	_node = &ExtractedMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
