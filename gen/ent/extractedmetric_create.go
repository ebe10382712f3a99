// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/extractedmetric"
)

// ExtractedMetricCreate is the builder for creating a ExtractedMetric entity.
type ExtractedMetricCreate struct {
	config
	mutation *ExtractedMetricMutation
	hooks    []Hook
}

// SetPropertyID sets the "property_id" field.
func (_c *ExtractedMetricCreate) SetPropertyID(v uuid.UUID) *ExtractedMetricCreate {
	_c.mutation.SetPropertyID(v)
	return _c
}

// SetMetricType sets the "metric_type" field.
func (_c *ExtractedMetricCreate) SetMetricType(v string) *ExtractedMetricCreate {
	_c.mutation.SetMetricType(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ExtractedMetricCreate) SetValue(v float64) *ExtractedMetricCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetPeriod sets the "period" field.
func (_c *ExtractedMetricCreate) SetPeriod(v string) *ExtractedMetricCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_c *ExtractedMetricCreate) SetSourceDocumentID(v uuid.UUID) *ExtractedMetricCreate {
	_c.mutation.SetSourceDocumentID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ExtractedMetricCreate) SetVersion(v int) *ExtractedMetricCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ExtractedMetricCreate) SetNillableVersion(v *int) *ExtractedMetricCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *ExtractedMetricCreate) SetExtractedAt(v time.Time) *ExtractedMetricCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *ExtractedMetricCreate) SetNillableExtractedAt(v *time.Time) *ExtractedMetricCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedMetricCreate) SetID(v uuid.UUID) *ExtractedMetricCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedMetricCreate) SetNillableID(v *uuid.UUID) *ExtractedMetricCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExtractedMetricMutation object of the builder.
func (_c *ExtractedMetricCreate) Mutation() *ExtractedMetricMutation {
	return _c.mutation
}

// Save creates the ExtractedMetric in the database.
func (_c *ExtractedMetricCreate) Save(ctx context.Context) (*ExtractedMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedMetricCreate) SaveX(ctx context.Context) *ExtractedMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedMetricCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := extractedmetric.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := extractedmetric.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractedmetric.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedMetricCreate) check() error {
	if _, ok := _c.mutation.PropertyID(); !ok {
		return &ValidationError{Name: "property_id", err: errors.New(`ent: missing required field "ExtractedMetric.property_id"`)}
	}
	if _, ok := _c.mutation.MetricType(); !ok {
		return &ValidationError{Name: "metric_type", err: errors.New(`ent: missing required field "ExtractedMetric.metric_type"`)}
	}
	if v, ok := _c.mutation.MetricType(); ok {
		if err := extractedmetric.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedMetric.metric_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "ExtractedMetric.value"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "ExtractedMetric.period"`)}
	}
	if v, ok := _c.mutation.Period(); ok {
		if err := extractedmetric.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "ExtractedMetric.period": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceDocumentID(); !ok {
		return &ValidationError{Name: "source_document_id", err: errors.New(`ent: missing required field "ExtractedMetric.source_document_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ExtractedMetric.version"`)}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "ExtractedMetric.extracted_at"`)}
	}
	return nil
}

func (_c *ExtractedMetricCreate) sqlSave(ctx context.Context) (*ExtractedMetric, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedMetricCreate) createSpec() (*ExtractedMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedmetric.Table, sqlgraph.NewFieldSpec(extractedmetric.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PropertyID(); ok {
		_spec.SetField(extractedmetric.FieldPropertyID, field.TypeUUID, value)
		_node.PropertyID = value
	}
	if value, ok := _c.mutation.MetricType(); ok {
		_spec.SetField(extractedmetric.FieldMetricType, field.TypeString, value)
		_node.MetricType = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(extractedmetric.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(extractedmetric.FieldPeriod, field.TypeString, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.SourceDocumentID(); ok {
		_spec.SetField(extractedmetric.FieldSourceDocumentID, field.TypeUUID, value)
		_node.SourceDocumentID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(extractedmetric.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(extractedmetric.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	return _node, _spec
}

// ExtractedMetricCreateBulk is the builder for creating many ExtractedMetric entities in bulk.
type ExtractedMetricCreateBulk struct {
	config
	err      error
	builders []*ExtractedMetricCreate
}

// Save creates the ExtractedMetric entities in the database.
func (_c *ExtractedMetricCreateBulk) Save(ctx context.Context) ([]*ExtractedMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedMetricMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractedMetricCreateBulk) SaveX(ctx context.Context) []*ExtractedMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
