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
	"github.com/propertyops/asset-governor/gen/ent/predicate"
	"github.com/propertyops/asset-governor/gen/ent/processingjob"
)

// ProcessingJobUpdate is the builder for updating ProcessingJob entities.
type ProcessingJobUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdate) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingJobUpdate) SetDocumentID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableDocumentID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPropertyID sets the "property_id" field.
func (_u *ProcessingJobUpdate) SetPropertyID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillablePropertyID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetBlobRef sets the "blob_ref" field.
func (_u *ProcessingJobUpdate) SetBlobRef(v string) *ProcessingJobUpdate {
	_u.mutation.SetBlobRef(v)
	return _u
}

// SetNillableBlobRef sets the "blob_ref" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableBlobRef(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetBlobRef(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingJobUpdate) SetStatus(v string) *ProcessingJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStatus(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_u *ProcessingJobUpdate) SetEnqueuedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetEnqueuedAt(v)
	return _u
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableEnqueuedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetEnqueuedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdate) SetStartedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessingJobUpdate) ClearStartedAt() *ProcessingJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingJobUpdate) SetCompletedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableCompletedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingJobUpdate) ClearCompletedAt() *ProcessingJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ProcessingJobUpdate) SetAttemptCount(v int) *ProcessingJobUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableAttemptCount(v *int) *ProcessingJobUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ProcessingJobUpdate) AddAttemptCount(v int) *ProcessingJobUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ProcessingJobUpdate) SetLastError(v string) *ProcessingJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableLastError(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ProcessingJobUpdate) ClearLastError() *ProcessingJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdate) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdate) check() error {
	if v, ok := _u.mutation.BlobRef(); ok {
		if err := processingjob.BlobRefValidator(v); err != nil {
			return &ValidationError{Name: "blob_ref", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.blob_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessingJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(processingjob.FieldDocumentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PropertyID(); ok {
		_spec.SetField(processingjob.FieldPropertyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BlobRef(); ok {
		_spec.SetField(processingjob.FieldBlobRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnqueuedAt(); ok {
		_spec.SetField(processingjob.FieldEnqueuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(processingjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(processingjob.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(processingjob.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(processingjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(processingjob.FieldLastError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingJobUpdateOne is the builder for updating a single ProcessingJob entity.
type ProcessingJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingJobUpdateOne) SetDocumentID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPropertyID sets the "property_id" field.
func (_u *ProcessingJobUpdateOne) SetPropertyID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillablePropertyID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetBlobRef sets the "blob_ref" field.
func (_u *ProcessingJobUpdateOne) SetBlobRef(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetBlobRef(v)
	return _u
}

// SetNillableBlobRef sets the "blob_ref" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableBlobRef(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetBlobRef(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingJobUpdateOne) SetStatus(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStatus(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_u *ProcessingJobUpdateOne) SetEnqueuedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetEnqueuedAt(v)
	return _u
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableEnqueuedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetEnqueuedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdateOne) SetStartedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessingJobUpdateOne) ClearStartedAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingJobUpdateOne) SetCompletedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingJobUpdateOne) ClearCompletedAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ProcessingJobUpdateOne) SetAttemptCount(v int) *ProcessingJobUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableAttemptCount(v *int) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ProcessingJobUpdateOne) AddAttemptCount(v int) *ProcessingJobUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ProcessingJobUpdateOne) SetLastError(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableLastError(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ProcessingJobUpdateOne) ClearLastError() *ProcessingJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdateOne) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdateOne) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingJobUpdateOne) Select(field string, fields ...string) *ProcessingJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingJob entity.
func (_u *ProcessingJobUpdateOne) Save(ctx context.Context) (*ProcessingJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) SaveX(ctx context.Context) *ProcessingJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdateOne) check() error {
	if v, ok := _u.mutation.BlobRef(); ok {
		if err := processingjob.BlobRefValidator(v); err != nil {
			return &ValidationError{Name: "blob_ref", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.blob_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessingJobUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingjob.FieldID)
		for _, f := range fields {
			if !processingjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingjob.FieldID {
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
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(processingjob.FieldDocumentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PropertyID(); ok {
		_spec.SetField(processingjob.FieldPropertyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BlobRef(); ok {
		_spec.SetField(processingjob.FieldBlobRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnqueuedAt(); ok {
		_spec.SetField(processingjob.FieldEnqueuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(processingjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(processingjob.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(processingjob.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(processingjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(processingjob.FieldLastError, field.TypeString)
	}
	_node = &ProcessingJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
