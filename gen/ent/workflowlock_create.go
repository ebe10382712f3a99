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
	"github.com/propertyops/asset-governor/gen/ent/committeealert"
	"github.com/propertyops/asset-governor/gen/ent/workflowlock"
)

// WorkflowLockCreate is the builder for creating a WorkflowLock entity.
type WorkflowLockCreate struct {
	config
	mutation *WorkflowLockMutation
	hooks    []Hook
}

// SetPropertyID sets the "property_id" field.
func (_c *WorkflowLockCreate) SetPropertyID(v uuid.UUID) *WorkflowLockCreate {
	_c.mutation.SetPropertyID(v)
	return _c
}

// SetAlertID sets the "alert_id" field.
func (_c *WorkflowLockCreate) SetAlertID(v uuid.UUID) *WorkflowLockCreate {
	_c.mutation.SetAlertID(v)
	return _c
}

// SetLockType sets the "lock_type" field.
func (_c *WorkflowLockCreate) SetLockType(v string) *WorkflowLockCreate {
	_c.mutation.SetLockType(v)
	return _c
}

// SetBlockedActions sets the "blocked_actions" field.
func (_c *WorkflowLockCreate) SetBlockedActions(v []string) *WorkflowLockCreate {
	_c.mutation.SetBlockedActions(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowLockCreate) SetStatus(v string) *WorkflowLockCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowLockCreate) SetNillableStatus(v *string) *WorkflowLockCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLockedAt sets the "locked_at" field.
func (_c *WorkflowLockCreate) SetLockedAt(v time.Time) *WorkflowLockCreate {
	_c.mutation.SetLockedAt(v)
	return _c
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_c *WorkflowLockCreate) SetNillableLockedAt(v *time.Time) *WorkflowLockCreate {
	if v != nil {
		_c.SetLockedAt(*v)
	}
	return _c
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_c *WorkflowLockCreate) SetUnlockedAt(v time.Time) *WorkflowLockCreate {
	_c.mutation.SetUnlockedAt(v)
	return _c
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_c *WorkflowLockCreate) SetNillableUnlockedAt(v *time.Time) *WorkflowLockCreate {
	if v != nil {
		_c.SetUnlockedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowLockCreate) SetID(v uuid.UUID) *WorkflowLockCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkflowLockCreate) SetNillableID(v *uuid.UUID) *WorkflowLockCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAlert sets the "alert" edge to the CommitteeAlert entity.
func (_c *WorkflowLockCreate) SetAlert(v *CommitteeAlert) *WorkflowLockCreate {
	return _c.SetAlertID(v.ID)
}

// Mutation returns the WorkflowLockMutation object of the builder.
func (_c *WorkflowLockCreate) Mutation() *WorkflowLockMutation {
	return _c.mutation
}

// Save creates the WorkflowLock in the database.
func (_c *WorkflowLockCreate) Save(ctx context.Context) (*WorkflowLock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowLockCreate) SaveX(ctx context.Context) *WorkflowLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowLockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowLockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowLockCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowlock.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LockedAt(); !ok {
		v := workflowlock.DefaultLockedAt()
		_c.mutation.SetLockedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workflowlock.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowLockCreate) check() error {
	if _, ok := _c.mutation.PropertyID(); !ok {
		return &ValidationError{Name: "property_id", err: errors.New(`ent: missing required field "WorkflowLock.property_id"`)}
	}
	if _, ok := _c.mutation.AlertID(); !ok {
		return &ValidationError{Name: "alert_id", err: errors.New(`ent: missing required field "WorkflowLock.alert_id"`)}
	}
	if _, ok := _c.mutation.LockType(); !ok {
		return &ValidationError{Name: "lock_type", err: errors.New(`ent: missing required field "WorkflowLock.lock_type"`)}
	}
	if v, ok := _c.mutation.LockType(); ok {
		if err := workflowlock.LockTypeValidator(v); err != nil {
			return &ValidationError{Name: "lock_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowLock.lock_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlockedActions(); !ok {
		return &ValidationError{Name: "blocked_actions", err: errors.New(`ent: missing required field "WorkflowLock.blocked_actions"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowLock.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowlock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowLock.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LockedAt(); !ok {
		return &ValidationError{Name: "locked_at", err: errors.New(`ent: missing required field "WorkflowLock.locked_at"`)}
	}
	if len(_c.mutation.AlertIDs()) == 0 {
		return &ValidationError{Name: "alert", err: errors.New(`ent: missing required edge "WorkflowLock.alert"`)}
	}
	return nil
}

func (_c *WorkflowLockCreate) sqlSave(ctx context.Context) (*WorkflowLock, error) {
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

func (_c *WorkflowLockCreate) createSpec() (*WorkflowLock, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowLock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowlock.Table, sqlgraph.NewFieldSpec(workflowlock.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PropertyID(); ok {
		_spec.SetField(workflowlock.FieldPropertyID, field.TypeUUID, value)
		_node.PropertyID = value
	}
	if value, ok := _c.mutation.LockType(); ok {
		_spec.SetField(workflowlock.FieldLockType, field.TypeString, value)
		_node.LockType = value
	}
	if value, ok := _c.mutation.BlockedActions(); ok {
		_spec.SetField(workflowlock.FieldBlockedActions, field.TypeJSON, value)
		_node.BlockedActions = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowlock.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LockedAt(); ok {
		_spec.SetField(workflowlock.FieldLockedAt, field.TypeTime, value)
		_node.LockedAt = value
	}
	if value, ok := _c.mutation.UnlockedAt(); ok {
		_spec.SetField(workflowlock.FieldUnlockedAt, field.TypeTime, value)
		_node.UnlockedAt = &value
	}
	if nodes := _c.mutation.AlertIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowlock.AlertTable,
			Columns: []string{workflowlock.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committeealert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AlertID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowLockCreateBulk is the builder for creating many WorkflowLock entities in bulk.
type WorkflowLockCreateBulk struct {
	config
	err      error
	builders []*WorkflowLockCreate
}

// Save creates the WorkflowLock entities in the database.
func (_c *WorkflowLockCreateBulk) Save(ctx context.Context) ([]*WorkflowLock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowLock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowLockMutation)
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
func (_c *WorkflowLockCreateBulk) SaveX(ctx context.Context) []*WorkflowLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowLockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowLockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
