// Code generated by ent, DO NOT EDIT.

package committeealert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the committeealert type in the database.
	Label = "committee_alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPropertyID holds the string denoting the property_id field in the database.
	FieldPropertyID = "property_id"
	// FieldAlertType holds the string denoting the alert_type field in the database.
	FieldAlertType = "alert_type"
	// FieldMetricType holds the string denoting the metric_type field in the database.
	FieldMetricType = "metric_type"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldMetricSnapshot holds the string denoting the metric_snapshot field in the database.
	FieldMetricSnapshot = "metric_snapshot"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldResolvedBy holds the string denoting the resolved_by field in the database.
	FieldResolvedBy = "resolved_by"
	// FieldResolutionNotes holds the string denoting the resolution_notes field in the database.
	FieldResolutionNotes = "resolution_notes"
	// EdgeLocks holds the string denoting the locks edge name in mutations.
	EdgeLocks = "locks"
	// Table holds the table name of the committeealert in the database.
	Table = "committee_alert"
	// LocksTable is the table that holds the locks relation/edge.
	LocksTable = "workflow_lock"
	// LocksInverseTable is the table name for the WorkflowLock entity.
	// It exists in this package in order to avoid circular dependency with the "workflowlock" package.
	LocksInverseTable = "workflow_lock"
	// LocksColumn is the table column denoting the locks relation/edge.
	LocksColumn = "alert_id"
)

// Columns holds all SQL columns for committeealert fields.
var Columns = []string{
	FieldID,
	FieldPropertyID,
	FieldAlertType,
	FieldMetricType,
	FieldSeverity,
	FieldMetricSnapshot,
	FieldStatus,
	FieldCreatedAt,
	FieldResolvedAt,
	FieldResolvedBy,
	FieldResolutionNotes,
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
	// AlertTypeValidator is a validator for the "alert_type" field. It is called by the builders before save.
	AlertTypeValidator func(string) error
	// MetricTypeValidator is a validator for the "metric_type" field. It is called by the builders before save.
	MetricTypeValidator func(string) error
	// SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	SeverityValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CommitteeAlert queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPropertyID orders the results by the property_id field.
func ByPropertyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPropertyID, opts...).ToFunc()
}

// ByAlertType orders the results by the alert_type field.
func ByAlertType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertType, opts...).ToFunc()
}

// ByMetricType orders the results by the metric_type field.
func ByMetricType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricType, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByResolvedBy orders the results by the resolved_by field.
func ByResolvedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedBy, opts...).ToFunc()
}

// ByResolutionNotes orders the results by the resolution_notes field.
func ByResolutionNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionNotes, opts...).ToFunc()
}

// ByLocksCount orders the results by locks count.
func ByLocksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLocksStep(), opts...)
	}
}

// ByLocks orders the results by locks terms.
func ByLocks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLocksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLocksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LocksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LocksTable, LocksColumn),
	)
}
