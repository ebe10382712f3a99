// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/extractedmetric"
)

// ExtractedMetric is the model entity for the ExtractedMetric schema.
type ExtractedMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PropertyID holds the value of the "property_id" field.
	PropertyID uuid.UUID `json:"property_id,omitempty"`
	// MetricType holds the value of the "metric_type" field.
	MetricType string `json:"metric_type,omitempty"`
	// Value holds the value of the "value" field.
	Value float64 `json:"value,omitempty"`
	// Period holds the value of the "period" field.
	Period string `json:"period,omitempty"`
	// SourceDocumentID holds the value of the "source_document_id" field.
	SourceDocumentID uuid.UUID `json:"source_document_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt  time.Time `json:"extracted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedmetric.FieldValue:
			values[i] = new(sql.NullFloat64)
		case extractedmetric.FieldVersion:
			values[i] = new(sql.NullInt64)
		case extractedmetric.FieldMetricType, extractedmetric.FieldPeriod:
			values[i] = new(sql.NullString)
		case extractedmetric.FieldExtractedAt:
			values[i] = new(sql.NullTime)
		case extractedmetric.FieldID, extractedmetric.FieldPropertyID, extractedmetric.FieldSourceDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedMetric fields.
func (_m *ExtractedMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedmetric.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractedmetric.FieldPropertyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field property_id", values[i])
			} else if value != nil {
				_m.PropertyID = *value
			}
		case extractedmetric.FieldMetricType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric_type", values[i])
			} else if value.Valid {
				_m.MetricType = value.String
			}
		case extractedmetric.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Float64
			}
		case extractedmetric.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = value.String
			}
		case extractedmetric.FieldSourceDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field source_document_id", values[i])
			} else if value != nil {
				_m.SourceDocumentID = *value
			}
		case extractedmetric.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case extractedmetric.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the ExtractedMetric.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedMetric) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractedMetric.
// Note that you need to call ExtractedMetric.Unwrap() before calling this method if this ExtractedMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedMetric) Update() *ExtractedMetricUpdateOne {
	return NewExtractedMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedMetric) Unwrap() *ExtractedMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedMetric) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("property_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PropertyID))
	builder.WriteString(", ")
	builder.WriteString("metric_type=")
	builder.WriteString(_m.MetricType)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(_m.Period)
	builder.WriteString(", ")
	builder.WriteString("source_document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceDocumentID))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedMetrics is a parsable slice of ExtractedMetric.
type ExtractedMetrics []*ExtractedMetric
