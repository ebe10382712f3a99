// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/committeealert"
	"github.com/propertyops/asset-governor/gen/ent/predicate"
	"github.com/propertyops/asset-governor/gen/ent/workflowlock"
)

// WorkflowLockUpdate is the builder for updating WorkflowLock entities.
type WorkflowLockUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowLockMutation
}

// Where appends a list predicates to the WorkflowLockUpdate builder.
func (_u *WorkflowLockUpdate) Where(ps ...predicate.WorkflowLock) *WorkflowLockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPropertyID sets the "property_id" field.
func (_u *WorkflowLockUpdate) SetPropertyID(v uuid.UUID) *WorkflowLockUpdate {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *WorkflowLockUpdate) SetNillablePropertyID(v *uuid.UUID) *WorkflowLockUpdate {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetAlertID sets the "alert_id" field.
func (_u *WorkflowLockUpdate) SetAlertID(v uuid.UUID) *WorkflowLockUpdate {
	_u.mutation.SetAlertID(v)
	return _u
}

// SetNillableAlertID sets the "alert_id" field if the given value is not nil.
func (_u *WorkflowLockUpdate) SetNillableAlertID(v *uuid.UUID) *WorkflowLockUpdate {
	if v != nil {
		_u.SetAlertID(*v)
	}
	return _u
}

// SetLockType sets the "lock_type" field.
func (_u *WorkflowLockUpdate) SetLockType(v string) *WorkflowLockUpdate {
	_u.mutation.SetLockType(v)
	return _u
}

// SetNillableLockType sets the "lock_type" field if the given value is not nil.
func (_u *WorkflowLockUpdate) SetNillableLockType(v *string) *WorkflowLockUpdate {
	if v != nil {
		_u.SetLockType(*v)
	}
	return _u
}

// SetBlockedActions sets the "blocked_actions" field.
func (_u *WorkflowLockUpdate) SetBlockedActions(v []string) *WorkflowLockUpdate {
	_u.mutation.SetBlockedActions(v)
	return _u
}

// AppendBlockedActions appends value to the "blocked_actions" field.
func (_u *WorkflowLockUpdate) AppendBlockedActions(v []string) *WorkflowLockUpdate {
	_u.mutation.AppendBlockedActions(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowLockUpdate) SetStatus(v string) *WorkflowLockUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowLockUpdate) SetNillableStatus(v *string) *WorkflowLockUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *WorkflowLockUpdate) SetLockedAt(v time.Time) *WorkflowLockUpdate {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *WorkflowLockUpdate) SetNillableLockedAt(v *time.Time) *WorkflowLockUpdate {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *WorkflowLockUpdate) SetUnlockedAt(v time.Time) *WorkflowLockUpdate {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *WorkflowLockUpdate) SetNillableUnlockedAt(v *time.Time) *WorkflowLockUpdate {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (_u *WorkflowLockUpdate) ClearUnlockedAt() *WorkflowLockUpdate {
	_u.mutation.ClearUnlockedAt()
	return _u
}

// SetAlert sets the "alert" edge to the CommitteeAlert entity.
func (_u *WorkflowLockUpdate) SetAlert(v *CommitteeAlert) *WorkflowLockUpdate {
	return _u.SetAlertID(v.ID)
}

// Mutation returns the WorkflowLockMutation object of the builder.
func (_u *WorkflowLockUpdate) Mutation() *WorkflowLockMutation {
	return _u.mutation
}

// ClearAlert clears the "alert" edge to the CommitteeAlert entity.
func (_u *WorkflowLockUpdate) ClearAlert() *WorkflowLockUpdate {
	_u.mutation.ClearAlert()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowLockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowLockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowLockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowLockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowLockUpdate) check() error {
	if v, ok := _u.mutation.LockType(); ok {
		if err := workflowlock.LockTypeValidator(v); err != nil {
			return &ValidationError{Name: "lock_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowLock.lock_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowlock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowLock.status": %w`, err)}
		}
	}
	if _u.mutation.AlertCleared() && len(_u.mutation.AlertIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowLock.alert"`)
	}
	return nil
}

func (_u *WorkflowLockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowlock.Table, workflowlock.Columns, sqlgraph.NewFieldSpec(workflowlock.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PropertyID(); ok {
		_spec.SetField(workflowlock.FieldPropertyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LockType(); ok {
		_spec.SetField(workflowlock.FieldLockType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlockedActions(); ok {
		_spec.SetField(workflowlock.FieldBlockedActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlockedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowlock.FieldBlockedActions, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowlock.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(workflowlock.FieldLockedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(workflowlock.FieldUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.UnlockedAtCleared() {
		_spec.ClearField(workflowlock.FieldUnlockedAt, field.TypeTime)
	}
	if _u.mutation.AlertCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowLockUpdateOne is the builder for updating a single WorkflowLock entity.
type WorkflowLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowLockMutation
}

// SetPropertyID sets the "property_id" field.
func (_u *WorkflowLockUpdateOne) SetPropertyID(v uuid.UUID) *WorkflowLockUpdateOne {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *WorkflowLockUpdateOne) SetNillablePropertyID(v *uuid.UUID) *WorkflowLockUpdateOne {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetAlertID sets the "alert_id" field.
func (_u *WorkflowLockUpdateOne) SetAlertID(v uuid.UUID) *WorkflowLockUpdateOne {
	_u.mutation.SetAlertID(v)
	return _u
}

// SetNillableAlertID sets the "alert_id" field if the given value is not nil.
func (_u *WorkflowLockUpdateOne) SetNillableAlertID(v *uuid.UUID) *WorkflowLockUpdateOne {
	if v != nil {
		_u.SetAlertID(*v)
	}
	return _u
}

// SetLockType sets the "lock_type" field.
func (_u *WorkflowLockUpdateOne) SetLockType(v string) *WorkflowLockUpdateOne {
	_u.mutation.SetLockType(v)
	return _u
}

// SetNillableLockType sets the "lock_type" field if the given value is not nil.
func (_u *WorkflowLockUpdateOne) SetNillableLockType(v *string) *WorkflowLockUpdateOne {
	if v != nil {
		_u.SetLockType(*v)
	}
	return _u
}

// SetBlockedActions sets the "blocked_actions" field.
func (_u *WorkflowLockUpdateOne) SetBlockedActions(v []string) *WorkflowLockUpdateOne {
	_u.mutation.SetBlockedActions(v)
	return _u
}

// AppendBlockedActions appends value to the "blocked_actions" field.
func (_u *WorkflowLockUpdateOne) AppendBlockedActions(v []string) *WorkflowLockUpdateOne {
	_u.mutation.AppendBlockedActions(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowLockUpdateOne) SetStatus(v string) *WorkflowLockUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowLockUpdateOne) SetNillableStatus(v *string) *WorkflowLockUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *WorkflowLockUpdateOne) SetLockedAt(v time.Time) *WorkflowLockUpdateOne {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *WorkflowLockUpdateOne) SetNillableLockedAt(v *time.Time) *WorkflowLockUpdateOne {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *WorkflowLockUpdateOne) SetUnlockedAt(v time.Time) *WorkflowLockUpdateOne {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *WorkflowLockUpdateOne) SetNillableUnlockedAt(v *time.Time) *WorkflowLockUpdateOne {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (_u *WorkflowLockUpdateOne) ClearUnlockedAt() *WorkflowLockUpdateOne {
	_u.mutation.ClearUnlockedAt()
	return _u
}

// SetAlert sets the "alert" edge to the CommitteeAlert entity.
func (_u *WorkflowLockUpdateOne) SetAlert(v *CommitteeAlert) *WorkflowLockUpdateOne {
	return _u.SetAlertID(v.ID)
}

// Mutation returns the WorkflowLockMutation object of the builder.
func (_u *WorkflowLockUpdateOne) Mutation() *WorkflowLockMutation {
	return _u.mutation
}

// ClearAlert clears the "alert" edge to the CommitteeAlert entity.
func (_u *WorkflowLockUpdateOne) ClearAlert() *WorkflowLockUpdateOne {
	_u.mutation.ClearAlert()
	return _u
}

// Where appends a list predicates to the WorkflowLockUpdate builder.
func (_u *WorkflowLockUpdateOne) Where(ps ...predicate.WorkflowLock) *WorkflowLockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowLockUpdateOne) Select(field string, fields ...string) *WorkflowLockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowLock entity.
func (_u *WorkflowLockUpdateOne) Save(ctx context.Context) (*WorkflowLock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowLockUpdateOne) SaveX(ctx context.Context) *WorkflowLock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowLockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowLockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowLockUpdateOne) check() error {
	if v, ok := _u.mutation.LockType(); ok {
		if err := workflowlock.LockTypeValidator(v); err != nil {
			return &ValidationError{Name: "lock_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowLock.lock_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowlock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowLock.status": %w`, err)}
		}
	}
	if _u.mutation.AlertCleared() && len(_u.mutation.AlertIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowLock.alert"`)
	}
	return nil
}

func (_u *WorkflowLockUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowLock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowlock.Table, workflowlock.Columns, sqlgraph.NewFieldSpec(workflowlock.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowlock.FieldID)
		for _, f := range fields {
			if !workflowlock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowlock.FieldID {
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
		_spec.SetField(workflowlock.FieldPropertyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LockType(); ok {
		_spec.SetField(workflowlock.FieldLockType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlockedActions(); ok {
		_spec.SetField(workflowlock.FieldBlockedActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlockedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowlock.FieldBlockedActions, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowlock.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(workflowlock.FieldLockedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(workflowlock.FieldUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.UnlockedAtCleared() {
		_spec.ClearField(workflowlock.FieldUnlockedAt, field.TypeTime)
	}
	if _u.mutation.AlertCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowLock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
