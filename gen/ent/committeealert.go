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
)

// CommitteeAlert is the model entity for the CommitteeAlert schema.
type CommitteeAlert struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PropertyID holds the value of the "property_id" field.
	PropertyID uuid.UUID `json:"property_id,omitempty"`
	// AlertType holds the value of the "alert_type" field.
	AlertType string `json:"alert_type,omitempty"`
	// MetricType holds the value of the "metric_type" field.
	MetricType string `json:"metric_type,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity string `json:"severity,omitempty"`
	// MetricSnapshot holds the value of the "metric_snapshot" field.
	MetricSnapshot json.RawMessage `json:"metric_snapshot,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// ResolvedBy holds the value of the "resolved_by" field.
	ResolvedBy *string `json:"resolved_by,omitempty"`
	// ResolutionNotes holds the value of the "resolution_notes" field.
	ResolutionNotes *string `json:"resolution_notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommitteeAlertQuery when eager-loading is set.
	Edges        CommitteeAlertEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommitteeAlertEdges holds the relations/edges for other nodes in the graph.
type CommitteeAlertEdges struct {
	// Locks holds the value of the locks edge.
	Locks []*WorkflowLock `json:"locks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LocksOrErr returns the Locks value or an error if the edge
// was not loaded in eager-loading.
func (e CommitteeAlertEdges) LocksOrErr() ([]*WorkflowLock, error) {
	if e.loadedTypes[0] {
		return e.Locks, nil
	}
	return nil, &NotLoadedError{edge: "locks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommitteeAlert) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case committeealert.FieldMetricSnapshot:
			values[i] = new([]byte)
		case committeealert.FieldAlertType, committeealert.FieldMetricType, committeealert.FieldSeverity, committeealert.FieldStatus, committeealert.FieldResolvedBy, committeealert.FieldResolutionNotes:
			values[i] = new(sql.NullString)
		case committeealert.FieldCreatedAt, committeealert.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		case committeealert.FieldID, committeealert.FieldPropertyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommitteeAlert fields.
func (_m *CommitteeAlert) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case committeealert.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case committeealert.FieldPropertyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field property_id", values[i])
			} else if value != nil {
				_m.PropertyID = *value
			}
		case committeealert.FieldAlertType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_type", values[i])
			} else if value.Valid {
				_m.AlertType = value.String
			}
		case committeealert.FieldMetricType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric_type", values[i])
			} else if value.Valid {
				_m.MetricType = value.String
			}
		case committeealert.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case committeealert.FieldMetricSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metric_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MetricSnapshot); err != nil {
					return fmt.Errorf("unmarshal field metric_snapshot: %w", err)
				}
			}
		case committeealert.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case committeealert.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case committeealert.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case committeealert.FieldResolvedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_by", values[i])
			} else if value.Valid {
				_m.ResolvedBy = new(string)
				*_m.ResolvedBy = value.String
			}
		case committeealert.FieldResolutionNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_notes", values[i])
			} else if value.Valid {
				_m.ResolutionNotes = new(string)
				*_m.ResolutionNotes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommitteeAlert.
// This includes values selected through modifiers, order, etc.
func (_m *CommitteeAlert) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLocks queries the "locks" edge of the CommitteeAlert entity.
func (_m *CommitteeAlert) QueryLocks() *WorkflowLockQuery {
	return NewCommitteeAlertClient(_m.config).QueryLocks(_m)
}

// Update returns a builder for updating this CommitteeAlert.
// Note that you need to call CommitteeAlert.Unwrap() before calling this method if this CommitteeAlert
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommitteeAlert) Update() *CommitteeAlertUpdateOne {
	return NewCommitteeAlertClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommitteeAlert entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommitteeAlert) Unwrap() *CommitteeAlert {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CommitteeAlert is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommitteeAlert) String() string {
	var builder strings.Builder
	builder.WriteString("CommitteeAlert(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("property_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PropertyID))
	builder.WriteString(", ")
	builder.WriteString("alert_type=")
	builder.WriteString(_m.AlertType)
	builder.WriteString(", ")
	builder.WriteString("metric_type=")
	builder.WriteString(_m.MetricType)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("metric_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetricSnapshot))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedBy; v != nil {
		builder.WriteString("resolved_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResolutionNotes; v != nil {
		builder.WriteString("resolution_notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// CommitteeAlerts is a parsable slice of CommitteeAlert.
type CommitteeAlerts []*CommitteeAlert
