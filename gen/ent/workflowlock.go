// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/committeealert"
	"github.com/propertyops/asset-governor/gen/ent/workflowlock"
)

// WorkflowLock is the model entity for the WorkflowLock schema.
type WorkflowLock struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PropertyID holds the value of the "property_id" field.
	PropertyID uuid.UUID `json:"property_id,omitempty"`
	// AlertID holds the value of the "alert_id" field.
	AlertID uuid.UUID `json:"alert_id,omitempty"`
	// LockType holds the value of the "lock_type" field.
	LockType string `json:"lock_type,omitempty"`
	// BlockedActions holds the value of the "blocked_actions" field.
	BlockedActions []string `json:"blocked_actions,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// LockedAt holds the value of the "locked_at" field.
	LockedAt time.Time `json:"locked_at,omitempty"`
	// UnlockedAt holds the value of the "unlocked_at" field.
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowLockQuery when eager-loading is set.
	Edges        WorkflowLockEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowLockEdges holds the relations/edges for other nodes in the graph.
type WorkflowLockEdges struct {
	// Alert holds the value of the alert edge.
	Alert *CommitteeAlert `json:"alert,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AlertOrErr returns the Alert value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowLockEdges) AlertOrErr() (*CommitteeAlert, error) {
	if e.Alert != nil {
		return e.Alert, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: committeealert.Label}
	}
	return nil, &NotLoadedError{edge: "alert"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowLock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowlock.FieldBlockedActions:
			values[i] = new([]byte)
		case workflowlock.FieldLockType, workflowlock.FieldStatus:
			values[i] = new(sql.NullString)
		case workflowlock.FieldLockedAt, workflowlock.FieldUnlockedAt:
			values[i] = new(sql.NullTime)
		case workflowlock.FieldID, workflowlock.FieldPropertyID, workflowlock.FieldAlertID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowLock fields.
func (_m *WorkflowLock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowlock.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case workflowlock.FieldPropertyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field property_id", values[i])
			} else if value != nil {
				_m.PropertyID = *value
			}
		case workflowlock.FieldAlertID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field alert_id", values[i])
			} else if value != nil {
				_m.AlertID = *value
			}
		case workflowlock.FieldLockType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lock_type", values[i])
			} else if value.Valid {
				_m.LockType = value.String
			}
		case workflowlock.FieldBlockedActions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_actions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BlockedActions); err != nil {
					return fmt.Errorf("unmarshal field blocked_actions: %w", err)
				}
			}
		case workflowlock.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case workflowlock.FieldLockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field locked_at", values[i])
			} else if value.Valid {
				_m.LockedAt = value.Time
			}
		case workflowlock.FieldUnlockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked_at", values[i])
			} else if value.Valid {
				_m.UnlockedAt = new(time.Time)
				*_m.UnlockedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowLock.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowLock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAlert queries the "alert" edge of the WorkflowLock entity.
func (_m *WorkflowLock) QueryAlert() *CommitteeAlertQuery {
	return NewWorkflowLockClient(_m.config).QueryAlert(_m)
}

// Update returns a builder for updating this WorkflowLock.
// Note that you need to call WorkflowLock.Unwrap() before calling this method if this WorkflowLock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowLock) Update() *WorkflowLockUpdateOne {
	return NewWorkflowLockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowLock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowLock) Unwrap() *WorkflowLock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowLock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowLock) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowLock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("property_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PropertyID))
	builder.WriteString(", ")
	builder.WriteString("alert_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertID))
	builder.WriteString(", ")
	builder.WriteString("lock_type=")
	builder.WriteString(_m.LockType)
	builder.WriteString(", ")
	builder.WriteString("blocked_actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockedActions))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("locked_at=")
	builder.WriteString(_m.LockedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.UnlockedAt; v != nil {
		builder.WriteString("unlocked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowLocks is a parsable slice of WorkflowLock.
type WorkflowLocks []*WorkflowLock
