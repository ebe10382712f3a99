// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
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

// CommitteeAlertUpdate is the builder for updating CommitteeAlert entities.
type CommitteeAlertUpdate struct {
	config
	hooks    []Hook
	mutation *CommitteeAlertMutation
}

// Where appends a list predicates to the CommitteeAlertUpdate builder.
func (_u *CommitteeAlertUpdate) Where(ps ...predicate.CommitteeAlert) *CommitteeAlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPropertyID sets the "property_id" field.
func (_u *CommitteeAlertUpdate) SetPropertyID(v uuid.UUID) *CommitteeAlertUpdate {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *CommitteeAlertUpdate) SetNillablePropertyID(v *uuid.UUID) *CommitteeAlertUpdate {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *CommitteeAlertUpdate) SetAlertType(v string) *CommitteeAlertUpdate {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *CommitteeAlertUpdate) SetNillableAlertType(v *string) *CommitteeAlertUpdate {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetMetricType sets the "metric_type" field.
func (_u *CommitteeAlertUpdate) SetMetricType(v string) *CommitteeAlertUpdate {
	_u.mutation.SetMetricType(v)
	return _u
}

// SetNillableMetricType sets the "metric_type" field if the given value is not nil.
func (_u *CommitteeAlertUpdate) SetNillableMetricType(v *string) *CommitteeAlertUpdate {
	if v != nil {
		_u.SetMetricType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *CommitteeAlertUpdate) SetSeverity(v string) *CommitteeAlertUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *CommitteeAlertUpdate) SetNillableSeverity(v *string) *CommitteeAlertUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMetricSnapshot sets the "metric_snapshot" field.
func (_u *CommitteeAlertUpdate) SetMetricSnapshot(v json.RawMessage) *CommitteeAlertUpdate {
	_u.mutation.SetMetricSnapshot(v)
	return _u
}

// AppendMetricSnapshot appends value to the "metric_snapshot" field.
func (_u *CommitteeAlertUpdate) AppendMetricSnapshot(v json.RawMessage) *CommitteeAlertUpdate {
	_u.mutation.AppendMetricSnapshot(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommitteeAlertUpdate) SetStatus(v string) *CommitteeAlertUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommitteeAlertUpdate) SetNillableStatus(v *string) *CommitteeAlertUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CommitteeAlertUpdate) SetCreatedAt(v time.Time) *CommitteeAlertUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CommitteeAlertUpdate) SetNillableCreatedAt(v *time.Time) *CommitteeAlertUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *CommitteeAlertUpdate) SetResolvedAt(v time.Time) *CommitteeAlertUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *CommitteeAlertUpdate) SetNillableResolvedAt(v *time.Time) *CommitteeAlertUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *CommitteeAlertUpdate) ClearResolvedAt() *CommitteeAlertUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *CommitteeAlertUpdate) SetResolvedBy(v string) *CommitteeAlertUpdate {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *CommitteeAlertUpdate) SetNillableResolvedBy(v *string) *CommitteeAlertUpdate {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *CommitteeAlertUpdate) ClearResolvedBy() *CommitteeAlertUpdate {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *CommitteeAlertUpdate) SetResolutionNotes(v string) *CommitteeAlertUpdate {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *CommitteeAlertUpdate) SetNillableResolutionNotes(v *string) *CommitteeAlertUpdate {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *CommitteeAlertUpdate) ClearResolutionNotes() *CommitteeAlertUpdate {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// AddLockIDs adds the "locks" edge to the WorkflowLock entity by IDs.
func (_u *CommitteeAlertUpdate) AddLockIDs(ids ...uuid.UUID) *CommitteeAlertUpdate {
	_u.mutation.AddLockIDs(ids...)
	return _u
}

// AddLocks adds the "locks" edges to the WorkflowLock entity.
func (_u *CommitteeAlertUpdate) AddLocks(v ...*WorkflowLock) *CommitteeAlertUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLockIDs(ids...)
}

// Mutation returns the CommitteeAlertMutation object of the builder.
func (_u *CommitteeAlertUpdate) Mutation() *CommitteeAlertMutation {
	return _u.mutation
}

// ClearLocks clears all "locks" edges to the WorkflowLock entity.
func (_u *CommitteeAlertUpdate) ClearLocks() *CommitteeAlertUpdate {
	_u.mutation.ClearLocks()
	return _u
}

// RemoveLockIDs removes the "locks" edge to WorkflowLock entities by IDs.
func (_u *CommitteeAlertUpdate) RemoveLockIDs(ids ...uuid.UUID) *CommitteeAlertUpdate {
	_u.mutation.RemoveLockIDs(ids...)
	return _u
}

// RemoveLocks removes "locks" edges to WorkflowLock entities.
func (_u *CommitteeAlertUpdate) RemoveLocks(v ...*WorkflowLock) *CommitteeAlertUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLockIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommitteeAlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitteeAlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommitteeAlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitteeAlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitteeAlertUpdate) check() error {
	if v, ok := _u.mutation.AlertType(); ok {
		if err := committeealert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.alert_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetricType(); ok {
		if err := committeealert.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.metric_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := committeealert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := committeealert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CommitteeAlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(committeealert.Table, committeealert.Columns, sqlgraph.NewFieldSpec(committeealert.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PropertyID(); ok {
		_spec.SetField(committeealert.FieldPropertyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(committeealert.FieldAlertType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetricType(); ok {
		_spec.SetField(committeealert.FieldMetricType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(committeealert.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetricSnapshot(); ok {
		_spec.SetField(committeealert.FieldMetricSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetricSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, committeealert.FieldMetricSnapshot, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(committeealert.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(committeealert.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(committeealert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(committeealert.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(committeealert.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(committeealert.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(committeealert.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(committeealert.FieldResolutionNotes, field.TypeString)
	}
	if _u.mutation.LocksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLocksIDs(); len(nodes) > 0 && !_u.mutation.LocksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{committeealert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommitteeAlertUpdateOne is the builder for updating a single CommitteeAlert entity.
type CommitteeAlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommitteeAlertMutation
}

// SetPropertyID sets the "property_id" field.
func (_u *CommitteeAlertUpdateOne) SetPropertyID(v uuid.UUID) *CommitteeAlertUpdateOne {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *CommitteeAlertUpdateOne) SetNillablePropertyID(v *uuid.UUID) *CommitteeAlertUpdateOne {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *CommitteeAlertUpdateOne) SetAlertType(v string) *CommitteeAlertUpdateOne {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *CommitteeAlertUpdateOne) SetNillableAlertType(v *string) *CommitteeAlertUpdateOne {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetMetricType sets the "metric_type" field.
func (_u *CommitteeAlertUpdateOne) SetMetricType(v string) *CommitteeAlertUpdateOne {
	_u.mutation.SetMetricType(v)
	return _u
}

// SetNillableMetricType sets the "metric_type" field if the given value is not nil.
func (_u *CommitteeAlertUpdateOne) SetNillableMetricType(v *string) *CommitteeAlertUpdateOne {
	if v != nil {
		_u.SetMetricType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *CommitteeAlertUpdateOne) SetSeverity(v string) *CommitteeAlertUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *CommitteeAlertUpdateOne) SetNillableSeverity(v *string) *CommitteeAlertUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMetricSnapshot sets the "metric_snapshot" field.
func (_u *CommitteeAlertUpdateOne) SetMetricSnapshot(v json.RawMessage) *CommitteeAlertUpdateOne {
	_u.mutation.SetMetricSnapshot(v)
	return _u
}

// AppendMetricSnapshot appends value to the "metric_snapshot" field.
func (_u *CommitteeAlertUpdateOne) AppendMetricSnapshot(v json.RawMessage) *CommitteeAlertUpdateOne {
	_u.mutation.AppendMetricSnapshot(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommitteeAlertUpdateOne) SetStatus(v string) *CommitteeAlertUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommitteeAlertUpdateOne) SetNillableStatus(v *string) *CommitteeAlertUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CommitteeAlertUpdateOne) SetCreatedAt(v time.Time) *CommitteeAlertUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CommitteeAlertUpdateOne) SetNillableCreatedAt(v *time.Time) *CommitteeAlertUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *CommitteeAlertUpdateOne) SetResolvedAt(v time.Time) *CommitteeAlertUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *CommitteeAlertUpdateOne) SetNillableResolvedAt(v *time.Time) *CommitteeAlertUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *CommitteeAlertUpdateOne) ClearResolvedAt() *CommitteeAlertUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *CommitteeAlertUpdateOne) SetResolvedBy(v string) *CommitteeAlertUpdateOne {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *CommitteeAlertUpdateOne) SetNillableResolvedBy(v *string) *CommitteeAlertUpdateOne {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *CommitteeAlertUpdateOne) ClearResolvedBy() *CommitteeAlertUpdateOne {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *CommitteeAlertUpdateOne) SetResolutionNotes(v string) *CommitteeAlertUpdateOne {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *CommitteeAlertUpdateOne) SetNillableResolutionNotes(v *string) *CommitteeAlertUpdateOne {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *CommitteeAlertUpdateOne) ClearResolutionNotes() *CommitteeAlertUpdateOne {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// AddLockIDs adds the "locks" edge to the WorkflowLock entity by IDs.
func (_u *CommitteeAlertUpdateOne) AddLockIDs(ids ...uuid.UUID) *CommitteeAlertUpdateOne {
	_u.mutation.AddLockIDs(ids...)
	return _u
}

// AddLocks adds the "locks" edges to the WorkflowLock entity.
func (_u *CommitteeAlertUpdateOne) AddLocks(v ...*WorkflowLock) *CommitteeAlertUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLockIDs(ids...)
}

// Mutation returns the CommitteeAlertMutation object of the builder.
func (_u *CommitteeAlertUpdateOne) Mutation() *CommitteeAlertMutation {
	return _u.mutation
}

// ClearLocks clears all "locks" edges to the WorkflowLock entity.
func (_u *CommitteeAlertUpdateOne) ClearLocks() *CommitteeAlertUpdateOne {
	_u.mutation.ClearLocks()
	return _u
}

// RemoveLockIDs removes the "locks" edge to WorkflowLock entities by IDs.
func (_u *CommitteeAlertUpdateOne) RemoveLockIDs(ids ...uuid.UUID) *CommitteeAlertUpdateOne {
	_u.mutation.RemoveLockIDs(ids...)
	return _u
}

// RemoveLocks removes "locks" edges to WorkflowLock entities.
func (_u *CommitteeAlertUpdateOne) RemoveLocks(v ...*WorkflowLock) *CommitteeAlertUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLockIDs(ids...)
}

// Where appends a list predicates to the CommitteeAlertUpdate builder.
func (_u *CommitteeAlertUpdateOne) Where(ps ...predicate.CommitteeAlert) *CommitteeAlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommitteeAlertUpdateOne) Select(field string, fields ...string) *CommitteeAlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommitteeAlert entity.
func (_u *CommitteeAlertUpdateOne) Save(ctx context.Context) (*CommitteeAlert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitteeAlertUpdateOne) SaveX(ctx context.Context) *CommitteeAlert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommitteeAlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitteeAlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitteeAlertUpdateOne) check() error {
	if v, ok := _u.mutation.AlertType(); ok {
		if err := committeealert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.alert_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetricType(); ok {
		if err := committeealert.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.metric_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := committeealert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := committeealert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CommitteeAlert.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CommitteeAlertUpdateOne) sqlSave(ctx context.Context) (_node *CommitteeAlert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(committeealert.Table, committeealert.Columns, sqlgraph.NewFieldSpec(committeealert.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CommitteeAlert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, committeealert.FieldID)
		for _, f := range fields {
			if !committeealert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != committeealert.FieldID {
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
		_spec.SetField(committeealert.FieldPropertyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(committeealert.FieldAlertType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetricType(); ok {
		_spec.SetField(committeealert.FieldMetricType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(committeealert.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetricSnapshot(); ok {
		_spec.SetField(committeealert.FieldMetricSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetricSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, committeealert.FieldMetricSnapshot, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(committeealert.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(committeealert.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(committeealert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(committeealert.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(committeealert.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(committeealert.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(committeealert.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(committeealert.FieldResolutionNotes, field.TypeString)
	}
	if _u.mutation.LocksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLocksIDs(); len(nodes) > 0 && !_u.mutation.LocksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CommitteeAlert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{committeealert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
