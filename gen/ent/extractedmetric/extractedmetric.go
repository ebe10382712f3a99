// Code generated by ent, DO NOT EDIT.

package extractedmetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractedmetric type in the database.
	Label = "extracted_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPropertyID holds the string denoting the property_id field in the database.
	FieldPropertyID = "property_id"
	// FieldMetricType holds the string denoting the metric_type field in the database.
	FieldMetricType = "metric_type"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldPeriod holds the string denoting the period field in the database.
	FieldPeriod = "period"
	// FieldSourceDocumentID holds the string denoting the source_document_id field in the database.
	FieldSourceDocumentID = "source_document_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldExtractedAt holds the string denoting the extracted_at field in the database.
	FieldExtractedAt = "extracted_at"
	// Table holds the table name of the extractedmetric in the database.
	Table = "extracted_metric"
)

// Columns holds all SQL columns for extractedmetric fields.
var Columns = []string{
	FieldID,
	FieldPropertyID,
	FieldMetricType,
	FieldValue,
	FieldPeriod,
	FieldSourceDocumentID,
	FieldVersion,
	FieldExtractedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// MetricTypeValidator is a validator for the "metric_type" field. It is called by the builders before save.
	MetricTypeValidator func(string) error
	// PeriodValidator is a validator for the "period" field. It is called by the builders before save.
	PeriodValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultExtractedAt holds the default value on creation for the "extracted_at" field.
	DefaultExtractedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractedMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPropertyID orders the results by the property_id field.
func ByPropertyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPropertyID, opts...).ToFunc()
}

// ByMetricType orders the results by the metric_type field.
func ByMetricType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricType, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByPeriod orders the results by the period field.
func ByPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriod, opts...).ToFunc()
}

// BySourceDocumentID orders the results by the source_document_id field.
func BySourceDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceDocumentID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByExtractedAt orders the results by the extracted_at field.
func ByExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAt, opts...).ToFunc()
}
