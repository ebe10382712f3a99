// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/committeealert"
	"github.com/propertyops/asset-governor/gen/ent/workflowlock"
)

// CommitteeAlertCreate is the builder for creating a CommitteeAlert entity.
type CommitteeAlertCreate struct {
	config
	mutation *CommitteeAlertMutation
	hooks    []Hook
}

// SetPropertyID sets the "property_id" field.
func (_c *CommitteeAlertCreate) SetPropertyID(v uuid.UUID) *CommitteeAlertCreate {
	_c.mutation.SetPropertyID(v)
	return _c
}

// SetAlertType sets the "alert_type" field.
func (_c *CommitteeAlertCreate) SetAlertType(v string) *CommitteeAlertCreate {
	_c.mutation.SetAlertType(v)
	return _c
}

// SetMetricType sets the "metric_type" field.
func (_c *CommitteeAlertCreate) SetMetricType(v string) *CommitteeAlertCreate {
	_c.mutation.SetMetricType(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *CommitteeAlertCreate) SetSeverity(v string) *CommitteeAlertCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetMetricSnapshot sets the "metric_snapshot" field.
func (_c *CommitteeAlertCreate) SetMetricSnapshot(v json.RawMessage) *CommitteeAlertCreate {
	_c.mutation.SetMetricSnapshot(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CommitteeAlertCreate) SetStatus(v string) *CommitteeAlertCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CommitteeAlertCreate) SetNillableStatus(v *string) *CommitteeAlertCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommitteeAlertCreate) SetCreatedAt(v time.Time) *CommitteeAlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommitteeAlertCreate) SetNillableCreatedAt(v *time.Time) *CommitteeAlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *CommitteeAlertCreate) SetResolvedAt(v time.Time) *CommitteeAlertCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *CommitteeAlertCreate) SetNillableResolvedAt(v *time.Time) *CommitteeAlertCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolvedBy sets the "resolved_by" field.
func (_c *CommitteeAlertCreate) SetResolvedBy(v string) *CommitteeAlertCreate {
	_c.mutation.SetResolvedBy(v)
	return _c
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_c *CommitteeAlertCreate) SetNillableResolvedBy(v *string) *CommitteeAlertCreate {
	if v != nil {
		_c.SetResolvedBy(*v)
	}
	return _c
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_c *CommitteeAlertCreate) SetResolutionNotes(v string) *CommitteeAlertCreate {
	_c.mutation.SetResolutionNotes(v)
	return _c
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_c *CommitteeAlertCreate) SetNillableResolutionNotes(v *string) *CommitteeAlertCreate {
	if v != nil {
		_c.SetResolutionNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommitteeAlertCreate) SetID(v uuid.UUID) *CommitteeAlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CommitteeAlertCreate) SetNillableID(v *uuid.UUID) *CommitteeAlertCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddLockIDs adds the "locks" edge to the WorkflowLock entity by IDs.
func (_c *CommitteeAlertCreate) AddLockIDs(ids ...uuid.UUID) *CommitteeAlertCreate {
	_c.mutation.AddLockIDs(ids...)
	return _c
}

// AddLocks adds the "locks" edges to the WorkflowLock entity.
func (_c *CommitteeAlertCreate) AddLocks(v ...*WorkflowLock) *CommitteeAlertCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLockIDs(ids...)
}

// Mutation returns the CommitteeAlertMutation object of the builder.
func (_c *CommitteeAlertCreate) Mutation() *CommitteeAlertMutation {
	return _c.mutation
}

// Save creates the CommitteeAlert in the database.
func (_c *CommitteeAlertCreate) Save(ctx context.Context) (*CommitteeAlert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommitteeAlertCreate) SaveX(ctx context.Context) *CommitteeAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitteeAlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitteeAlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommitteeAlertCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := committeealert.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := committeealert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := committeealert.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommitteeAlertCreate) check() error {
	if _, ok := _c.mutation.PropertyID(); !ok {
		return &ValidationError{Name: "property_id", err: errors.New(`ent: missing required field "CommitteeAlert.property_id"`)}
	}
	if _, ok := _c.mutation.AlertType(); !ok {
		return &ValidationError{Name: "alert_type", err: errors.New(`ent: missing required field "CommitteeAlert.alert_type"`)}
	}
	if v, ok := _c.mutation.AlertType(); ok {
		if err := committeealert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.alert_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MetricType(); !ok {
		return &ValidationError{Name: "metric_type", err: errors.New(`ent: missing required field "CommitteeAlert.metric_type"`)}
	}
	if v, ok := _c.mutation.MetricType(); ok {
		if err := committeealert.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.metric_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "CommitteeAlert.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := committeealert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MetricSnapshot(); !ok {
		return &ValidationError{Name: "metric_snapshot", err: errors.New(`ent: missing required field "CommitteeAlert.metric_snapshot"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CommitteeAlert.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := committeealert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CommitteeAlert.created_at"`)}
	}
	return nil
}

func (_c *CommitteeAlertCreate) sqlSave(ctx context.Context) (*CommitteeAlert, error) {
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

func (_c *CommitteeAlertCreate) createSpec() (*CommitteeAlert, *sqlgraph.CreateSpec) {
	var (
		_node = &CommitteeAlert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(committeealert.Table, sqlgraph.NewFieldSpec(committeealert.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PropertyID(); ok {
		_spec.SetField(committeealert.FieldPropertyID, field.TypeUUID, value)
		_node.PropertyID = value
	}
	if value, ok := _c.mutation.AlertType(); ok {
		_spec.SetField(committeealert.FieldAlertType, field.TypeString, value)
		_node.AlertType = value
	}
	if value, ok := _c.mutation.MetricType(); ok {
		_spec.SetField(committeealert.FieldMetricType, field.TypeString, value)
		_node.MetricType = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(committeealert.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.MetricSnapshot(); ok {
		_spec.SetField(committeealert.FieldMetricSnapshot, field.TypeJSON, value)
		_node.MetricSnapshot = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(committeealert.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(committeealert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(committeealert.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.ResolvedBy(); ok {
		_spec.SetField(committeealert.FieldResolvedBy, field.TypeString, value)
		_node.ResolvedBy = &value
	}
	if value, ok := _c.mutation.ResolutionNotes(); ok {
		_spec.SetField(committeealert.FieldResolutionNotes, field.TypeString, value)
		_node.ResolutionNotes = &value
	}
	if nodes := _c.mutation.LocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committeealert.LocksTable,
			Columns: []string{committeealert.LocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowlock.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CommitteeAlertCreateBulk is the builder for creating many CommitteeAlert entities in bulk.
type CommitteeAlertCreateBulk struct {
	config
	err      error
	builders []*CommitteeAlertCreate
}

// Save creates the CommitteeAlert entities in the database.
func (_c *CommitteeAlertCreateBulk) Save(ctx context.Context) ([]*CommitteeAlert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommitteeAlert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommitteeAlertMutation)
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
func (_c *CommitteeAlertCreateBulk) SaveX(ctx context.Context) []*CommitteeAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitteeAlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitteeAlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
