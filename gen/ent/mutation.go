// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/committeealert"
	"github.com/propertyops/asset-governor/gen/ent/extractedmetric"
	"github.com/propertyops/asset-governor/gen/ent/predicate"
	"github.com/propertyops/asset-governor/gen/ent/processingjob"
	"github.com/propertyops/asset-governor/gen/ent/property"
	"github.com/propertyops/asset-governor/gen/ent/workflowlock"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCommitteeAlert  = "CommitteeAlert"
	TypeExtractedMetric = "ExtractedMetric"
	TypeProcessingJob   = "ProcessingJob"
	TypeProperty        = "Property"
	TypeWorkflowLock    = "WorkflowLock"
)

// CommitteeAlertMutation represents an operation that mutates the CommitteeAlert nodes in the graph.
type CommitteeAlertMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	property_id           *uuid.UUID
	alert_type            *string
	metric_type           *string
	severity              *string
	metric_snapshot       *json.RawMessage
	appendmetric_snapshot json.RawMessage
	status                *string
	created_at            *time.Time
	resolved_at           *time.Time
	resolved_by           *string
	resolution_notes      *string
	clearedFields         map[string]struct{}
	locks                 map[uuid.UUID]struct{}
	removedlocks          map[uuid.UUID]struct{}
	clearedlocks          bool
	done                  bool
	oldValue              func(context.Context) (*CommitteeAlert, error)
	predicates            []predicate.CommitteeAlert
}

var _ ent.Mutation = (*CommitteeAlertMutation)(nil)

// committeealertOption allows management of the mutation configuration using functional options.
type committeealertOption func(*CommitteeAlertMutation)

// newCommitteeAlertMutation creates new mutation for the CommitteeAlert entity.
func newCommitteeAlertMutation(c config, op Op, opts ...committeealertOption) *CommitteeAlertMutation {
	m := &CommitteeAlertMutation{
		config:        c,
		op:            op,
		typ:           TypeCommitteeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommitteeAlertID sets the ID field of the mutation.
func withCommitteeAlertID(id uuid.UUID) committeealertOption {
	return func(m *CommitteeAlertMutation) {
		var (
			err   error
			once  sync.Once
			value *CommitteeAlert
		)
		m.oldValue = func(ctx context.Context) (*CommitteeAlert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommitteeAlert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommitteeAlert sets the old CommitteeAlert of the mutation.
func withCommitteeAlert(node *CommitteeAlert) committeealertOption {
	return func(m *CommitteeAlertMutation) {
		m.oldValue = func(context.Context) (*CommitteeAlert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommitteeAlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommitteeAlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CommitteeAlert entities.
func (m *CommitteeAlertMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommitteeAlertMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommitteeAlertMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommitteeAlert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPropertyID sets the "property_id" field.
func (m *CommitteeAlertMutation) SetPropertyID(u uuid.UUID) {
	m.property_id = &u
}

// PropertyID returns the value of the "property_id" field in the mutation.
func (m *CommitteeAlertMutation) PropertyID() (r uuid.UUID, exists bool) {
	v := m.property_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyID returns the old "property_id" field's value of the CommitteeAlert entity.
// If the CommitteeAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeAlertMutation) OldPropertyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyID: %w", err)
	}
	return oldValue.PropertyID, nil
}

// ResetPropertyID resets all changes to the "property_id" field.
func (m *CommitteeAlertMutation) ResetPropertyID() {
	m.property_id = nil
}

// SetAlertType sets the "alert_type" field.
func (m *CommitteeAlertMutation) SetAlertType(s string) {
	m.alert_type = &s
}

// AlertType returns the value of the "alert_type" field in the mutation.
func (m *CommitteeAlertMutation) AlertType() (r string, exists bool) {
	v := m.alert_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertType returns the old "alert_type" field's value of the CommitteeAlert entity.
// If the CommitteeAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeAlertMutation) OldAlertType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertType: %w", err)
	}
	return oldValue.AlertType, nil
}

// ResetAlertType resets all changes to the "alert_type" field.
func (m *CommitteeAlertMutation) ResetAlertType() {
	m.alert_type = nil
}

// SetMetricType sets the "metric_type" field.
func (m *CommitteeAlertMutation) SetMetricType(s string) {
	m.metric_type = &s
}

// MetricType returns the value of the "metric_type" field in the mutation.
func (m *CommitteeAlertMutation) MetricType() (r string, exists bool) {
	v := m.metric_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricType returns the old "metric_type" field's value of the CommitteeAlert entity.
// If the CommitteeAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeAlertMutation) OldMetricType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricType: %w", err)
	}
	return oldValue.MetricType, nil
}

// ResetMetricType resets all changes to the "metric_type" field.
func (m *CommitteeAlertMutation) ResetMetricType() {
	m.metric_type = nil
}

// SetSeverity sets the "severity" field.
func (m *CommitteeAlertMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *CommitteeAlertMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the CommitteeAlert entity.
// If the CommitteeAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeAlertMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *CommitteeAlertMutation) ResetSeverity() {
	m.severity = nil
}

// SetMetricSnapshot sets the "metric_snapshot" field.
func (m *CommitteeAlertMutation) SetMetricSnapshot(jm json.RawMessage) {
	m.metric_snapshot = &jm
	m.appendmetric_snapshot = nil
}

// MetricSnapshot returns the value of the "metric_snapshot" field in the mutation.
func (m *CommitteeAlertMutation) MetricSnapshot() (r json.RawMessage, exists bool) {
	v := m.metric_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricSnapshot returns the old "metric_snapshot" field's value of the CommitteeAlert entity.
// If the CommitteeAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeAlertMutation) OldMetricSnapshot(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricSnapshot: %w", err)
	}
	return oldValue.MetricSnapshot, nil
}

// AppendMetricSnapshot adds jm to the "metric_snapshot" field.
func (m *CommitteeAlertMutation) AppendMetricSnapshot(jm json.RawMessage) {
	m.appendmetric_snapshot = append(m.appendmetric_snapshot, jm...)
}

// AppendedMetricSnapshot returns the list of values that were appended to the "metric_snapshot" field in this mutation.
func (m *CommitteeAlertMutation) AppendedMetricSnapshot() (json.RawMessage, bool) {
	if len(m.appendmetric_snapshot) == 0 {
		return nil, false
	}
	return m.appendmetric_snapshot, true
}

// ResetMetricSnapshot resets all changes to the "metric_snapshot" field.
func (m *CommitteeAlertMutation) ResetMetricSnapshot() {
	m.metric_snapshot = nil
	m.appendmetric_snapshot = nil
}

// SetStatus sets the "status" field.
func (m *CommitteeAlertMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CommitteeAlertMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CommitteeAlert entity.
// If the CommitteeAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeAlertMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CommitteeAlertMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CommitteeAlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommitteeAlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CommitteeAlert entity.
// If the CommitteeAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeAlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommitteeAlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *CommitteeAlertMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *CommitteeAlertMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the CommitteeAlert entity.
// If the CommitteeAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeAlertMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *CommitteeAlertMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[committeealert.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *CommitteeAlertMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[committeealert.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *CommitteeAlertMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, committeealert.FieldResolvedAt)
}

// SetResolvedBy sets the "resolved_by" field.
func (m *CommitteeAlertMutation) SetResolvedBy(s string) {
	m.resolved_by = &s
}

// ResolvedBy returns the value of the "resolved_by" field in the mutation.
func (m *CommitteeAlertMutation) ResolvedBy() (r string, exists bool) {
	v := m.resolved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedBy returns the old "resolved_by" field's value of the CommitteeAlert entity.
// If the CommitteeAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeAlertMutation) OldResolvedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedBy: %w", err)
	}
	return oldValue.ResolvedBy, nil
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (m *CommitteeAlertMutation) ClearResolvedBy() {
	m.resolved_by = nil
	m.clearedFields[committeealert.FieldResolvedBy] = struct{}{}
}

// ResolvedByCleared returns if the "resolved_by" field was cleared in this mutation.
func (m *CommitteeAlertMutation) ResolvedByCleared() bool {
	_, ok := m.clearedFields[committeealert.FieldResolvedBy]
	return ok
}

// ResetResolvedBy resets all changes to the "resolved_by" field.
func (m *CommitteeAlertMutation) ResetResolvedBy() {
	m.resolved_by = nil
	delete(m.clearedFields, committeealert.FieldResolvedBy)
}

// SetResolutionNotes sets the "resolution_notes" field.
func (m *CommitteeAlertMutation) SetResolutionNotes(s string) {
	m.resolution_notes = &s
}

// ResolutionNotes returns the value of the "resolution_notes" field in the mutation.
func (m *CommitteeAlertMutation) ResolutionNotes() (r string, exists bool) {
	v := m.resolution_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionNotes returns the old "resolution_notes" field's value of the CommitteeAlert entity.
// If the CommitteeAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeAlertMutation) OldResolutionNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionNotes: %w", err)
	}
	return oldValue.ResolutionNotes, nil
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (m *CommitteeAlertMutation) ClearResolutionNotes() {
	m.resolution_notes = nil
	m.clearedFields[committeealert.FieldResolutionNotes] = struct{}{}
}

// ResolutionNotesCleared returns if the "resolution_notes" field was cleared in this mutation.
func (m *CommitteeAlertMutation) ResolutionNotesCleared() bool {
	_, ok := m.clearedFields[committeealert.FieldResolutionNotes]
	return ok
}

// ResetResolutionNotes resets all changes to the "resolution_notes" field.
func (m *CommitteeAlertMutation) ResetResolutionNotes() {
	m.resolution_notes = nil
	delete(m.clearedFields, committeealert.FieldResolutionNotes)
}

// AddLockIDs adds the "locks" edge to the WorkflowLock entity by ids.
func (m *CommitteeAlertMutation) AddLockIDs(ids ...uuid.UUID) {
	if m.locks == nil {
		m.locks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.locks[ids[i]] = struct{}{}
	}
}

// ClearLocks clears the "locks" edge to the WorkflowLock entity.
func (m *CommitteeAlertMutation) ClearLocks() {
	m.clearedlocks = true
}

// LocksCleared reports if the "locks" edge to the WorkflowLock entity was cleared.
func (m *CommitteeAlertMutation) LocksCleared() bool {
	return m.clearedlocks
}

// RemoveLockIDs removes the "locks" edge to the WorkflowLock entity by IDs.
func (m *CommitteeAlertMutation) RemoveLockIDs(ids ...uuid.UUID) {
	if m.removedlocks == nil {
		m.removedlocks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.locks, ids[i])
		m.removedlocks[ids[i]] = struct{}{}
	}
}

// RemovedLocks returns the removed IDs of the "locks" edge to the WorkflowLock entity.
func (m *CommitteeAlertMutation) RemovedLocksIDs() (ids []uuid.UUID) {
	for id := range m.removedlocks {
		ids = append(ids, id)
	}
	return
}

// LocksIDs returns the "locks" edge IDs in the mutation.
func (m *CommitteeAlertMutation) LocksIDs() (ids []uuid.UUID) {
	for id := range m.locks {
		ids = append(ids, id)
	}
	return
}

// ResetLocks resets all changes to the "locks" edge.
func (m *CommitteeAlertMutation) ResetLocks() {
	m.locks = nil
	m.clearedlocks = false
	m.removedlocks = nil
}

// Where appends a list predicates to the CommitteeAlertMutation builder.
func (m *CommitteeAlertMutation) Where(ps ...predicate.CommitteeAlert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommitteeAlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommitteeAlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommitteeAlert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommitteeAlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommitteeAlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommitteeAlert).
func (m *CommitteeAlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommitteeAlertMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.property_id != nil {
		fields = append(fields, committeealert.FieldPropertyID)
	}
	if m.alert_type != nil {
		fields = append(fields, committeealert.FieldAlertType)
	}
	if m.metric_type != nil {
		fields = append(fields, committeealert.FieldMetricType)
	}
	if m.severity != nil {
		fields = append(fields, committeealert.FieldSeverity)
	}
	if m.metric_snapshot != nil {
		fields = append(fields, committeealert.FieldMetricSnapshot)
	}
	if m.status != nil {
		fields = append(fields, committeealert.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, committeealert.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, committeealert.FieldResolvedAt)
	}
	if m.resolved_by != nil {
		fields = append(fields, committeealert.FieldResolvedBy)
	}
	if m.resolution_notes != nil {
		fields = append(fields, committeealert.FieldResolutionNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommitteeAlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case committeealert.FieldPropertyID:
		return m.PropertyID()
	case committeealert.FieldAlertType:
		return m.AlertType()
	case committeealert.FieldMetricType:
		return m.MetricType()
	case committeealert.FieldSeverity:
		return m.Severity()
	case committeealert.FieldMetricSnapshot:
		return m.MetricSnapshot()
	case committeealert.FieldStatus:
		return m.Status()
	case committeealert.FieldCreatedAt:
		return m.CreatedAt()
	case committeealert.FieldResolvedAt:
		return m.ResolvedAt()
	case committeealert.FieldResolvedBy:
		return m.ResolvedBy()
	case committeealert.FieldResolutionNotes:
		return m.ResolutionNotes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommitteeAlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case committeealert.FieldPropertyID:
		return m.OldPropertyID(ctx)
	case committeealert.FieldAlertType:
		return m.OldAlertType(ctx)
	case committeealert.FieldMetricType:
		return m.OldMetricType(ctx)
	case committeealert.FieldSeverity:
		return m.OldSeverity(ctx)
	case committeealert.FieldMetricSnapshot:
		return m.OldMetricSnapshot(ctx)
	case committeealert.FieldStatus:
		return m.OldStatus(ctx)
	case committeealert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case committeealert.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case committeealert.FieldResolvedBy:
		return m.OldResolvedBy(ctx)
	case committeealert.FieldResolutionNotes:
		return m.OldResolutionNotes(ctx)
	}
	return nil, fmt.Errorf("unknown CommitteeAlert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitteeAlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case committeealert.FieldPropertyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyID(v)
		return nil
	case committeealert.FieldAlertType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertType(v)
		return nil
	case committeealert.FieldMetricType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricType(v)
		return nil
	case committeealert.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case committeealert.FieldMetricSnapshot:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricSnapshot(v)
		return nil
	case committeealert.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case committeealert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case committeealert.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case committeealert.FieldResolvedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedBy(v)
		return nil
	case committeealert.FieldResolutionNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionNotes(v)
		return nil
	}
	return fmt.Errorf("unknown CommitteeAlert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommitteeAlertMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommitteeAlertMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitteeAlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CommitteeAlert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommitteeAlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(committeealert.FieldResolvedAt) {
		fields = append(fields, committeealert.FieldResolvedAt)
	}
	if m.FieldCleared(committeealert.FieldResolvedBy) {
		fields = append(fields, committeealert.FieldResolvedBy)
	}
	if m.FieldCleared(committeealert.FieldResolutionNotes) {
		fields = append(fields, committeealert.FieldResolutionNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommitteeAlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommitteeAlertMutation) ClearField(name string) error {
	switch name {
	case committeealert.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case committeealert.FieldResolvedBy:
		m.ClearResolvedBy()
		return nil
	case committeealert.FieldResolutionNotes:
		m.ClearResolutionNotes()
		return nil
	}
	return fmt.Errorf("unknown CommitteeAlert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommitteeAlertMutation) ResetField(name string) error {
	switch name {
	case committeealert.FieldPropertyID:
		m.ResetPropertyID()
		return nil
	case committeealert.FieldAlertType:
		m.ResetAlertType()
		return nil
	case committeealert.FieldMetricType:
		m.ResetMetricType()
		return nil
	case committeealert.FieldSeverity:
		m.ResetSeverity()
		return nil
	case committeealert.FieldMetricSnapshot:
		m.ResetMetricSnapshot()
		return nil
	case committeealert.FieldStatus:
		m.ResetStatus()
		return nil
	case committeealert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case committeealert.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case committeealert.FieldResolvedBy:
		m.ResetResolvedBy()
		return nil
	case committeealert.FieldResolutionNotes:
		m.ResetResolutionNotes()
		return nil
	}
	return fmt.Errorf("unknown CommitteeAlert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommitteeAlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.locks != nil {
		edges = append(edges, committeealert.EdgeLocks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommitteeAlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case committeealert.EdgeLocks:
		ids := make([]ent.Value, 0, len(m.locks))
		for id := range m.locks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommitteeAlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedlocks != nil {
		edges = append(edges, committeealert.EdgeLocks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommitteeAlertMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case committeealert.EdgeLocks:
		ids := make([]ent.Value, 0, len(m.removedlocks))
		for id := range m.removedlocks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommitteeAlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlocks {
		edges = append(edges, committeealert.EdgeLocks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommitteeAlertMutation) EdgeCleared(name string) bool {
	switch name {
	case committeealert.EdgeLocks:
		return m.clearedlocks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommitteeAlertMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CommitteeAlert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommitteeAlertMutation) ResetEdge(name string) error {
	switch name {
	case committeealert.EdgeLocks:
		m.ResetLocks()
		return nil
	}
	return fmt.Errorf("unknown CommitteeAlert edge %s", name)
}

// ExtractedMetricMutation represents an operation that mutates the ExtractedMetric nodes in the graph.
type ExtractedMetricMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	property_id        *uuid.UUID
	metric_type        *string
	value              *float64
	addvalue           *float64
	period             *string
	source_document_id *uuid.UUID
	version            *int
	addversion         *int
	extracted_at       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ExtractedMetric, error)
	predicates         []predicate.ExtractedMetric
}

var _ ent.Mutation = (*ExtractedMetricMutation)(nil)

// extractedmetricOption allows management of the mutation configuration using functional options.
type extractedmetricOption func(*ExtractedMetricMutation)

// newExtractedMetricMutation creates new mutation for the ExtractedMetric entity.
func newExtractedMetricMutation(c config, op Op, opts ...extractedmetricOption) *ExtractedMetricMutation {
	m := &ExtractedMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedMetricID sets the ID field of the mutation.
func withExtractedMetricID(id uuid.UUID) extractedmetricOption {
	return func(m *ExtractedMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedMetric
		)
		m.oldValue = func(ctx context.Context) (*ExtractedMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedMetric sets the old ExtractedMetric of the mutation.
func withExtractedMetric(node *ExtractedMetric) extractedmetricOption {
	return func(m *ExtractedMetricMutation) {
		m.oldValue = func(context.Context) (*ExtractedMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedMetric entities.
func (m *ExtractedMetricMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedMetricMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedMetricMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPropertyID sets the "property_id" field.
func (m *ExtractedMetricMutation) SetPropertyID(u uuid.UUID) {
	m.property_id = &u
}

// PropertyID returns the value of the "property_id" field in the mutation.
func (m *ExtractedMetricMutation) PropertyID() (r uuid.UUID, exists bool) {
	v := m.property_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyID returns the old "property_id" field's value of the ExtractedMetric entity.
// If the ExtractedMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedMetricMutation) OldPropertyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyID: %w", err)
	}
	return oldValue.PropertyID, nil
}

// ResetPropertyID resets all changes to the "property_id" field.
func (m *ExtractedMetricMutation) ResetPropertyID() {
	m.property_id = nil
}

// SetMetricType sets the "metric_type" field.
func (m *ExtractedMetricMutation) SetMetricType(s string) {
	m.metric_type = &s
}

// MetricType returns the value of the "metric_type" field in the mutation.
func (m *ExtractedMetricMutation) MetricType() (r string, exists bool) {
	v := m.metric_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricType returns the old "metric_type" field's value of the ExtractedMetric entity.
// If the ExtractedMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedMetricMutation) OldMetricType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricType: %w", err)
	}
	return oldValue.MetricType, nil
}

// ResetMetricType resets all changes to the "metric_type" field.
func (m *ExtractedMetricMutation) ResetMetricType() {
	m.metric_type = nil
}

// SetValue sets the "value" field.
func (m *ExtractedMetricMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *ExtractedMetricMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ExtractedMetric entity.
// If the ExtractedMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedMetricMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *ExtractedMetricMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *ExtractedMetricMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *ExtractedMetricMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetPeriod sets the "period" field.
func (m *ExtractedMetricMutation) SetPeriod(s string) {
	m.period = &s
}

// Period returns the value of the "period" field in the mutation.
func (m *ExtractedMetricMutation) Period() (r string, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the ExtractedMetric entity.
// If the ExtractedMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedMetricMutation) OldPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *ExtractedMetricMutation) ResetPeriod() {
	m.period = nil
}

// SetSourceDocumentID sets the "source_document_id" field.
func (m *ExtractedMetricMutation) SetSourceDocumentID(u uuid.UUID) {
	m.source_document_id = &u
}

// SourceDocumentID returns the value of the "source_document_id" field in the mutation.
func (m *ExtractedMetricMutation) SourceDocumentID() (r uuid.UUID, exists bool) {
	v := m.source_document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDocumentID returns the old "source_document_id" field's value of the ExtractedMetric entity.
// If the ExtractedMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedMetricMutation) OldSourceDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDocumentID: %w", err)
	}
	return oldValue.SourceDocumentID, nil
}

// ResetSourceDocumentID resets all changes to the "source_document_id" field.
func (m *ExtractedMetricMutation) ResetSourceDocumentID() {
	m.source_document_id = nil
}

// SetVersion sets the "version" field.
func (m *ExtractedMetricMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ExtractedMetricMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ExtractedMetric entity.
// If the ExtractedMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedMetricMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ExtractedMetricMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ExtractedMetricMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ExtractedMetricMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetExtractedAt sets the "extracted_at" field.
func (m *ExtractedMetricMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *ExtractedMetricMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the ExtractedMetric entity.
// If the ExtractedMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedMetricMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *ExtractedMetricMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// Where appends a list predicates to the ExtractedMetricMutation builder.
func (m *ExtractedMetricMutation) Where(ps ...predicate.ExtractedMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedMetric).
func (m *ExtractedMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedMetricMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.property_id != nil {
		fields = append(fields, extractedmetric.FieldPropertyID)
	}
	if m.metric_type != nil {
		fields = append(fields, extractedmetric.FieldMetricType)
	}
	if m.value != nil {
		fields = append(fields, extractedmetric.FieldValue)
	}
	if m.period != nil {
		fields = append(fields, extractedmetric.FieldPeriod)
	}
	if m.source_document_id != nil {
		fields = append(fields, extractedmetric.FieldSourceDocumentID)
	}
	if m.version != nil {
		fields = append(fields, extractedmetric.FieldVersion)
	}
	if m.extracted_at != nil {
		fields = append(fields, extractedmetric.FieldExtractedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedmetric.FieldPropertyID:
		return m.PropertyID()
	case extractedmetric.FieldMetricType:
		return m.MetricType()
	case extractedmetric.FieldValue:
		return m.Value()
	case extractedmetric.FieldPeriod:
		return m.Period()
	case extractedmetric.FieldSourceDocumentID:
		return m.SourceDocumentID()
	case extractedmetric.FieldVersion:
		return m.Version()
	case extractedmetric.FieldExtractedAt:
		return m.ExtractedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedmetric.FieldPropertyID:
		return m.OldPropertyID(ctx)
	case extractedmetric.FieldMetricType:
		return m.OldMetricType(ctx)
	case extractedmetric.FieldValue:
		return m.OldValue(ctx)
	case extractedmetric.FieldPeriod:
		return m.OldPeriod(ctx)
	case extractedmetric.FieldSourceDocumentID:
		return m.OldSourceDocumentID(ctx)
	case extractedmetric.FieldVersion:
		return m.OldVersion(ctx)
	case extractedmetric.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedmetric.FieldPropertyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyID(v)
		return nil
	case extractedmetric.FieldMetricType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricType(v)
		return nil
	case extractedmetric.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case extractedmetric.FieldPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case extractedmetric.FieldSourceDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDocumentID(v)
		return nil
	case extractedmetric.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case extractedmetric.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedMetricMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, extractedmetric.FieldValue)
	}
	if m.addversion != nil {
		fields = append(fields, extractedmetric.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedmetric.FieldValue:
		return m.AddedValue()
	case extractedmetric.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedmetric.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	case extractedmetric.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedMetricMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedMetricMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExtractedMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedMetricMutation) ResetField(name string) error {
	switch name {
	case extractedmetric.FieldPropertyID:
		m.ResetPropertyID()
		return nil
	case extractedmetric.FieldMetricType:
		m.ResetMetricType()
		return nil
	case extractedmetric.FieldValue:
		m.ResetValue()
		return nil
	case extractedmetric.FieldPeriod:
		m.ResetPeriod()
		return nil
	case extractedmetric.FieldSourceDocumentID:
		m.ResetSourceDocumentID()
		return nil
	case extractedmetric.FieldVersion:
		m.ResetVersion()
		return nil
	case extractedmetric.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedMetricMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedMetricMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedMetricMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractedMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedMetricMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractedMetric edge %s", name)
}

// ProcessingJobMutation represents an operation that mutates the ProcessingJob nodes in the graph.
type ProcessingJobMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	document_id      *uuid.UUID
	property_id      *uuid.UUID
	blob_ref         *string
	status           *string
	enqueued_at      *time.Time
	started_at       *time.Time
	completed_at     *time.Time
	attempt_count    *int
	addattempt_count *int
	last_error       *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ProcessingJob, error)
	predicates       []predicate.ProcessingJob
}

var _ ent.Mutation = (*ProcessingJobMutation)(nil)

// processingjobOption allows management of the mutation configuration using functional options.
type processingjobOption func(*ProcessingJobMutation)

// newProcessingJobMutation creates new mutation for the ProcessingJob entity.
func newProcessingJobMutation(c config, op Op, opts ...processingjobOption) *ProcessingJobMutation {
	m := &ProcessingJobMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingJobID sets the ID field of the mutation.
func withProcessingJobID(id uuid.UUID) processingjobOption {
	return func(m *ProcessingJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingJob
		)
		m.oldValue = func(ctx context.Context) (*ProcessingJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingJob sets the old ProcessingJob of the mutation.
func withProcessingJob(node *ProcessingJob) processingjobOption {
	return func(m *ProcessingJobMutation) {
		m.oldValue = func(context.Context) (*ProcessingJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingJob entities.
func (m *ProcessingJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ProcessingJobMutation) SetDocumentID(u uuid.UUID) {
	m.document_id = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ProcessingJobMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ProcessingJobMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetPropertyID sets the "property_id" field.
func (m *ProcessingJobMutation) SetPropertyID(u uuid.UUID) {
	m.property_id = &u
}

// PropertyID returns the value of the "property_id" field in the mutation.
func (m *ProcessingJobMutation) PropertyID() (r uuid.UUID, exists bool) {
	v := m.property_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyID returns the old "property_id" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldPropertyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyID: %w", err)
	}
	return oldValue.PropertyID, nil
}

// ResetPropertyID resets all changes to the "property_id" field.
func (m *ProcessingJobMutation) ResetPropertyID() {
	m.property_id = nil
}

// SetBlobRef sets the "blob_ref" field.
func (m *ProcessingJobMutation) SetBlobRef(s string) {
	m.blob_ref = &s
}

// BlobRef returns the value of the "blob_ref" field in the mutation.
func (m *ProcessingJobMutation) BlobRef() (r string, exists bool) {
	v := m.blob_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobRef returns the old "blob_ref" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldBlobRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobRef: %w", err)
	}
	return oldValue.BlobRef, nil
}

// ResetBlobRef resets all changes to the "blob_ref" field.
func (m *ProcessingJobMutation) ResetBlobRef() {
	m.blob_ref = nil
}

// SetStatus sets the "status" field.
func (m *ProcessingJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessingJobMutation) ResetStatus() {
	m.status = nil
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (m *ProcessingJobMutation) SetEnqueuedAt(t time.Time) {
	m.enqueued_at = &t
}

// EnqueuedAt returns the value of the "enqueued_at" field in the mutation.
func (m *ProcessingJobMutation) EnqueuedAt() (r time.Time, exists bool) {
	v := m.enqueued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnqueuedAt returns the old "enqueued_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldEnqueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnqueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnqueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnqueuedAt: %w", err)
	}
	return oldValue.EnqueuedAt, nil
}

// ResetEnqueuedAt resets all changes to the "enqueued_at" field.
func (m *ProcessingJobMutation) ResetEnqueuedAt() {
	m.enqueued_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ProcessingJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProcessingJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ProcessingJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[processingjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ProcessingJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProcessingJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, processingjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProcessingJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProcessingJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProcessingJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[processingjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProcessingJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProcessingJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, processingjob.FieldCompletedAt)
}

// SetAttemptCount sets the "attempt_count" field.
func (m *ProcessingJobMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *ProcessingJobMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *ProcessingJobMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *ProcessingJobMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *ProcessingJobMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetLastError sets the "last_error" field.
func (m *ProcessingJobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ProcessingJobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ProcessingJobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[processingjob.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ProcessingJobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ProcessingJobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, processingjob.FieldLastError)
}

// Where appends a list predicates to the ProcessingJobMutation builder.
func (m *ProcessingJobMutation) Where(ps ...predicate.ProcessingJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingJob).
func (m *ProcessingJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingJobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.document_id != nil {
		fields = append(fields, processingjob.FieldDocumentID)
	}
	if m.property_id != nil {
		fields = append(fields, processingjob.FieldPropertyID)
	}
	if m.blob_ref != nil {
		fields = append(fields, processingjob.FieldBlobRef)
	}
	if m.status != nil {
		fields = append(fields, processingjob.FieldStatus)
	}
	if m.enqueued_at != nil {
		fields = append(fields, processingjob.FieldEnqueuedAt)
	}
	if m.started_at != nil {
		fields = append(fields, processingjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, processingjob.FieldCompletedAt)
	}
	if m.attempt_count != nil {
		fields = append(fields, processingjob.FieldAttemptCount)
	}
	if m.last_error != nil {
		fields = append(fields, processingjob.FieldLastError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingjob.FieldDocumentID:
		return m.DocumentID()
	case processingjob.FieldPropertyID:
		return m.PropertyID()
	case processingjob.FieldBlobRef:
		return m.BlobRef()
	case processingjob.FieldStatus:
		return m.Status()
	case processingjob.FieldEnqueuedAt:
		return m.EnqueuedAt()
	case processingjob.FieldStartedAt:
		return m.StartedAt()
	case processingjob.FieldCompletedAt:
		return m.CompletedAt()
	case processingjob.FieldAttemptCount:
		return m.AttemptCount()
	case processingjob.FieldLastError:
		return m.LastError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingjob.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case processingjob.FieldPropertyID:
		return m.OldPropertyID(ctx)
	case processingjob.FieldBlobRef:
		return m.OldBlobRef(ctx)
	case processingjob.FieldStatus:
		return m.OldStatus(ctx)
	case processingjob.FieldEnqueuedAt:
		return m.OldEnqueuedAt(ctx)
	case processingjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case processingjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case processingjob.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case processingjob.FieldLastError:
		return m.OldLastError(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingjob.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case processingjob.FieldPropertyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyID(v)
		return nil
	case processingjob.FieldBlobRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobRef(v)
		return nil
	case processingjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processingjob.FieldEnqueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnqueuedAt(v)
		return nil
	case processingjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case processingjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case processingjob.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case processingjob.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, processingjob.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processingjob.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processingjob.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processingjob.FieldStartedAt) {
		fields = append(fields, processingjob.FieldStartedAt)
	}
	if m.FieldCleared(processingjob.FieldCompletedAt) {
		fields = append(fields, processingjob.FieldCompletedAt)
	}
	if m.FieldCleared(processingjob.FieldLastError) {
		fields = append(fields, processingjob.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingJobMutation) ClearField(name string) error {
	switch name {
	case processingjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case processingjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case processingjob.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingJobMutation) ResetField(name string) error {
	switch name {
	case processingjob.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case processingjob.FieldPropertyID:
		m.ResetPropertyID()
		return nil
	case processingjob.FieldBlobRef:
		m.ResetBlobRef()
		return nil
	case processingjob.FieldStatus:
		m.ResetStatus()
		return nil
	case processingjob.FieldEnqueuedAt:
		m.ResetEnqueuedAt()
		return nil
	case processingjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case processingjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case processingjob.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case processingjob.FieldLastError:
		m.ResetLastError()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessingJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessingJob edge %s", name)
}

// PropertyMutation represents an operation that mutates the Property nodes in the graph.
type PropertyMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	property_class *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Property, error)
	predicates     []predicate.Property
}

var _ ent.Mutation = (*PropertyMutation)(nil)

// propertyOption allows management of the mutation configuration using functional options.
type propertyOption func(*PropertyMutation)

// newPropertyMutation creates new mutation for the Property entity.
func newPropertyMutation(c config, op Op, opts ...propertyOption) *PropertyMutation {
	m := &PropertyMutation{
		config:        c,
		op:            op,
		typ:           TypeProperty,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPropertyID sets the ID field of the mutation.
func withPropertyID(id uuid.UUID) propertyOption {
	return func(m *PropertyMutation) {
		var (
			err   error
			once  sync.Once
			value *Property
		)
		m.oldValue = func(ctx context.Context) (*Property, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Property.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProperty sets the old Property of the mutation.
func withProperty(node *Property) propertyOption {
	return func(m *PropertyMutation) {
		m.oldValue = func(context.Context) (*Property, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PropertyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PropertyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Property entities.
func (m *PropertyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PropertyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PropertyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Property.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PropertyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PropertyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PropertyMutation) ResetName() {
	m.name = nil
}

// SetPropertyClass sets the "property_class" field.
func (m *PropertyMutation) SetPropertyClass(s string) {
	m.property_class = &s
}

// PropertyClass returns the value of the "property_class" field in the mutation.
func (m *PropertyMutation) PropertyClass() (r string, exists bool) {
	v := m.property_class
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyClass returns the old "property_class" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldPropertyClass(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyClass: %w", err)
	}
	return oldValue.PropertyClass, nil
}

// ResetPropertyClass resets all changes to the "property_class" field.
func (m *PropertyMutation) ResetPropertyClass() {
	m.property_class = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PropertyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PropertyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PropertyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PropertyMutation builder.
func (m *PropertyMutation) Where(ps ...predicate.Property) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PropertyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PropertyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Property, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PropertyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PropertyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Property).
func (m *PropertyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PropertyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, property.FieldName)
	}
	if m.property_class != nil {
		fields = append(fields, property.FieldPropertyClass)
	}
	if m.created_at != nil {
		fields = append(fields, property.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PropertyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case property.FieldName:
		return m.Name()
	case property.FieldPropertyClass:
		return m.PropertyClass()
	case property.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PropertyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case property.FieldName:
		return m.OldName(ctx)
	case property.FieldPropertyClass:
		return m.OldPropertyClass(ctx)
	case property.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Property field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PropertyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case property.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case property.FieldPropertyClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyClass(v)
		return nil
	case property.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Property field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PropertyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PropertyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PropertyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Property numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PropertyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PropertyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PropertyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Property nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PropertyMutation) ResetField(name string) error {
	switch name {
	case property.FieldName:
		m.ResetName()
		return nil
	case property.FieldPropertyClass:
		m.ResetPropertyClass()
		return nil
	case property.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Property field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PropertyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PropertyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PropertyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PropertyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PropertyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PropertyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PropertyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Property unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PropertyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Property edge %s", name)
}

// WorkflowLockMutation represents an operation that mutates the WorkflowLock nodes in the graph.
type WorkflowLockMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	property_id           *uuid.UUID
	lock_type             *string
	blocked_actions       *[]string
	appendblocked_actions []string
	status                *string
	locked_at             *time.Time
	unlocked_at           *time.Time
	clearedFields         map[string]struct{}
	alert                 *uuid.UUID
	clearedalert          bool
	done                  bool
	oldValue              func(context.Context) (*WorkflowLock, error)
	predicates            []predicate.WorkflowLock
}

var _ ent.Mutation = (*WorkflowLockMutation)(nil)

// workflowlockOption allows management of the mutation configuration using functional options.
type workflowlockOption func(*WorkflowLockMutation)

// newWorkflowLockMutation creates new mutation for the WorkflowLock entity.
func newWorkflowLockMutation(c config, op Op, opts ...workflowlockOption) *WorkflowLockMutation {
	m := &WorkflowLockMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowLockID sets the ID field of the mutation.
func withWorkflowLockID(id uuid.UUID) workflowlockOption {
	return func(m *WorkflowLockMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowLock
		)
		m.oldValue = func(ctx context.Context) (*WorkflowLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowLock sets the old WorkflowLock of the mutation.
func withWorkflowLock(node *WorkflowLock) workflowlockOption {
	return func(m *WorkflowLockMutation) {
		m.oldValue = func(context.Context) (*WorkflowLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowLock entities.
func (m *WorkflowLockMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowLockMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowLockMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPropertyID sets the "property_id" field.
func (m *WorkflowLockMutation) SetPropertyID(u uuid.UUID) {
	m.property_id = &u
}

// PropertyID returns the value of the "property_id" field in the mutation.
func (m *WorkflowLockMutation) PropertyID() (r uuid.UUID, exists bool) {
	v := m.property_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyID returns the old "property_id" field's value of the WorkflowLock entity.
// If the WorkflowLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLockMutation) OldPropertyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyID: %w", err)
	}
	return oldValue.PropertyID, nil
}

// ResetPropertyID resets all changes to the "property_id" field.
func (m *WorkflowLockMutation) ResetPropertyID() {
	m.property_id = nil
}

// SetAlertID sets the "alert_id" field.
func (m *WorkflowLockMutation) SetAlertID(u uuid.UUID) {
	m.alert = &u
}

// AlertID returns the value of the "alert_id" field in the mutation.
func (m *WorkflowLockMutation) AlertID() (r uuid.UUID, exists bool) {
	v := m.alert
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertID returns the old "alert_id" field's value of the WorkflowLock entity.
// If the WorkflowLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLockMutation) OldAlertID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertID: %w", err)
	}
	return oldValue.AlertID, nil
}

// ResetAlertID resets all changes to the "alert_id" field.
func (m *WorkflowLockMutation) ResetAlertID() {
	m.alert = nil
}

// SetLockType sets the "lock_type" field.
func (m *WorkflowLockMutation) SetLockType(s string) {
	m.lock_type = &s
}

// LockType returns the value of the "lock_type" field in the mutation.
func (m *WorkflowLockMutation) LockType() (r string, exists bool) {
	v := m.lock_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLockType returns the old "lock_type" field's value of the WorkflowLock entity.
// If the WorkflowLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLockMutation) OldLockType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockType: %w", err)
	}
	return oldValue.LockType, nil
}

// ResetLockType resets all changes to the "lock_type" field.
func (m *WorkflowLockMutation) ResetLockType() {
	m.lock_type = nil
}

// SetBlockedActions sets the "blocked_actions" field.
func (m *WorkflowLockMutation) SetBlockedActions(s []string) {
	m.blocked_actions = &s
	m.appendblocked_actions = nil
}

// BlockedActions returns the value of the "blocked_actions" field in the mutation.
func (m *WorkflowLockMutation) BlockedActions() (r []string, exists bool) {
	v := m.blocked_actions
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedActions returns the old "blocked_actions" field's value of the WorkflowLock entity.
// If the WorkflowLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLockMutation) OldBlockedActions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedActions: %w", err)
	}
	return oldValue.BlockedActions, nil
}

// AppendBlockedActions adds s to the "blocked_actions" field.
func (m *WorkflowLockMutation) AppendBlockedActions(s []string) {
	m.appendblocked_actions = append(m.appendblocked_actions, s...)
}

// AppendedBlockedActions returns the list of values that were appended to the "blocked_actions" field in this mutation.
func (m *WorkflowLockMutation) AppendedBlockedActions() ([]string, bool) {
	if len(m.appendblocked_actions) == 0 {
		return nil, false
	}
	return m.appendblocked_actions, true
}

// ResetBlockedActions resets all changes to the "blocked_actions" field.
func (m *WorkflowLockMutation) ResetBlockedActions() {
	m.blocked_actions = nil
	m.appendblocked_actions = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowLockMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowLockMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowLock entity.
// If the WorkflowLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLockMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowLockMutation) ResetStatus() {
	m.status = nil
}

// SetLockedAt sets the "locked_at" field.
func (m *WorkflowLockMutation) SetLockedAt(t time.Time) {
	m.locked_at = &t
}

// LockedAt returns the value of the "locked_at" field in the mutation.
func (m *WorkflowLockMutation) LockedAt() (r time.Time, exists bool) {
	v := m.locked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedAt returns the old "locked_at" field's value of the WorkflowLock entity.
// If the WorkflowLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLockMutation) OldLockedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedAt: %w", err)
	}
	return oldValue.LockedAt, nil
}

// ResetLockedAt resets all changes to the "locked_at" field.
func (m *WorkflowLockMutation) ResetLockedAt() {
	m.locked_at = nil
}

// SetUnlockedAt sets the "unlocked_at" field.
func (m *WorkflowLockMutation) SetUnlockedAt(t time.Time) {
	m.unlocked_at = &t
}

// UnlockedAt returns the value of the "unlocked_at" field in the mutation.
func (m *WorkflowLockMutation) UnlockedAt() (r time.Time, exists bool) {
	v := m.unlocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedAt returns the old "unlocked_at" field's value of the WorkflowLock entity.
// If the WorkflowLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLockMutation) OldUnlockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedAt: %w", err)
	}
	return oldValue.UnlockedAt, nil
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (m *WorkflowLockMutation) ClearUnlockedAt() {
	m.unlocked_at = nil
	m.clearedFields[workflowlock.FieldUnlockedAt] = struct{}{}
}

// UnlockedAtCleared returns if the "unlocked_at" field was cleared in this mutation.
func (m *WorkflowLockMutation) UnlockedAtCleared() bool {
	_, ok := m.clearedFields[workflowlock.FieldUnlockedAt]
	return ok
}

// ResetUnlockedAt resets all changes to the "unlocked_at" field.
func (m *WorkflowLockMutation) ResetUnlockedAt() {
	m.unlocked_at = nil
	delete(m.clearedFields, workflowlock.FieldUnlockedAt)
}

// ClearAlert clears the "alert" edge to the CommitteeAlert entity.
func (m *WorkflowLockMutation) ClearAlert() {
	m.clearedalert = true
	m.clearedFields[workflowlock.FieldAlertID] = struct{}{}
}

// AlertCleared reports if the "alert" edge to the CommitteeAlert entity was cleared.
func (m *WorkflowLockMutation) AlertCleared() bool {
	return m.clearedalert
}

// AlertIDs returns the "alert" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AlertID instead. It exists only for internal usage by the builders.
func (m *WorkflowLockMutation) AlertIDs() (ids []uuid.UUID) {
	if id := m.alert; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAlert resets all changes to the "alert" edge.
func (m *WorkflowLockMutation) ResetAlert() {
	m.alert = nil
	m.clearedalert = false
}

// Where appends a list predicates to the WorkflowLockMutation builder.
func (m *WorkflowLockMutation) Where(ps ...predicate.WorkflowLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowLock).
func (m *WorkflowLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowLockMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.property_id != nil {
		fields = append(fields, workflowlock.FieldPropertyID)
	}
	if m.alert != nil {
		fields = append(fields, workflowlock.FieldAlertID)
	}
	if m.lock_type != nil {
		fields = append(fields, workflowlock.FieldLockType)
	}
	if m.blocked_actions != nil {
		fields = append(fields, workflowlock.FieldBlockedActions)
	}
	if m.status != nil {
		fields = append(fields, workflowlock.FieldStatus)
	}
	if m.locked_at != nil {
		fields = append(fields, workflowlock.FieldLockedAt)
	}
	if m.unlocked_at != nil {
		fields = append(fields, workflowlock.FieldUnlockedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowlock.FieldPropertyID:
		return m.PropertyID()
	case workflowlock.FieldAlertID:
		return m.AlertID()
	case workflowlock.FieldLockType:
		return m.LockType()
	case workflowlock.FieldBlockedActions:
		return m.BlockedActions()
	case workflowlock.FieldStatus:
		return m.Status()
	case workflowlock.FieldLockedAt:
		return m.LockedAt()
	case workflowlock.FieldUnlockedAt:
		return m.UnlockedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowlock.FieldPropertyID:
		return m.OldPropertyID(ctx)
	case workflowlock.FieldAlertID:
		return m.OldAlertID(ctx)
	case workflowlock.FieldLockType:
		return m.OldLockType(ctx)
	case workflowlock.FieldBlockedActions:
		return m.OldBlockedActions(ctx)
	case workflowlock.FieldStatus:
		return m.OldStatus(ctx)
	case workflowlock.FieldLockedAt:
		return m.OldLockedAt(ctx)
	case workflowlock.FieldUnlockedAt:
		return m.OldUnlockedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowlock.FieldPropertyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyID(v)
		return nil
	case workflowlock.FieldAlertID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertID(v)
		return nil
	case workflowlock.FieldLockType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockType(v)
		return nil
	case workflowlock.FieldBlockedActions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedActions(v)
		return nil
	case workflowlock.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowlock.FieldLockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedAt(v)
		return nil
	case workflowlock.FieldUnlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowLockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowLockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowLockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowlock.FieldUnlockedAt) {
		fields = append(fields, workflowlock.FieldUnlockedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowLockMutation) ClearField(name string) error {
	switch name {
	case workflowlock.FieldUnlockedAt:
		m.ClearUnlockedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowLockMutation) ResetField(name string) error {
	switch name {
	case workflowlock.FieldPropertyID:
		m.ResetPropertyID()
		return nil
	case workflowlock.FieldAlertID:
		m.ResetAlertID()
		return nil
	case workflowlock.FieldLockType:
		m.ResetLockType()
		return nil
	case workflowlock.FieldBlockedActions:
		m.ResetBlockedActions()
		return nil
	case workflowlock.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowlock.FieldLockedAt:
		m.ResetLockedAt()
		return nil
	case workflowlock.FieldUnlockedAt:
		m.ResetUnlockedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.alert != nil {
		edges = append(edges, workflowlock.EdgeAlert)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowLockMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowlock.EdgeAlert:
		if id := m.alert; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedalert {
		edges = append(edges, workflowlock.EdgeAlert)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowLockMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowlock.EdgeAlert:
		return m.clearedalert
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowLockMutation) ClearEdge(name string) error {
	switch name {
	case workflowlock.EdgeAlert:
		m.ClearAlert()
		return nil
	}
	return fmt.Errorf("unknown WorkflowLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowLockMutation) ResetEdge(name string) error {
	switch name {
	case workflowlock.EdgeAlert:
		m.ResetAlert()
		return nil
	}
	return fmt.Errorf("unknown WorkflowLock edge %s", name)
}
