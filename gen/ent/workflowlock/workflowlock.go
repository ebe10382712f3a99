// Code generated by ent, DO NOT EDIT.

package workflowlock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the workflowlock type in the database.
	Label = "workflow_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPropertyID holds the string denoting the property_id field in the database.
	FieldPropertyID = "property_id"
	// FieldAlertID holds the string denoting the alert_id field in the database.
	FieldAlertID = "alert_id"
	// FieldLockType holds the string denoting the lock_type field in the database.
	FieldLockType = "lock_type"
	// FieldBlockedActions holds the string denoting the blocked_actions field in the database.
	FieldBlockedActions = "blocked_actions"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLockedAt holds the string denoting the locked_at field in the database.
	FieldLockedAt = "locked_at"
	// FieldUnlockedAt holds the string denoting the unlocked_at field in the database.
	FieldUnlockedAt = "unlocked_at"
	// EdgeAlert holds the string denoting the alert edge name in mutations.
	EdgeAlert = "alert"
	// Table holds the table name of the workflowlock in the database.
	Table = "workflow_lock"
	// AlertTable is the table that holds the alert relation/edge.
	AlertTable = "workflow_lock"
	// AlertInverseTable is the table name for the CommitteeAlert entity.
	// It exists in this package in order to avoid circular dependency with the "committeealert" package.
	AlertInverseTable = "committee_alert"
	// AlertColumn is the table column denoting the alert relation/edge.
	AlertColumn = "alert_id"
)

// Columns holds all SQL columns for workflowlock fields.
var Columns = []string{
	FieldID,
	FieldPropertyID,
	FieldAlertID,
	FieldLockType,
	FieldBlockedActions,
	FieldStatus,
	FieldLockedAt,
	FieldUnlockedAt,
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
	// LockTypeValidator is a validator for the "lock_type" field. It is called by the builders before save.
	LockTypeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultLockedAt holds the default value on creation for the "locked_at" field.
	DefaultLockedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the WorkflowLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPropertyID orders the results by the property_id field.
func ByPropertyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPropertyID, opts...).ToFunc()
}

// ByAlertID orders the results by the alert_id field.
func ByAlertID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertID, opts...).ToFunc()
}

// ByLockType orders the results by the lock_type field.
func ByLockType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLockedAt orders the results by the locked_at field.
func ByLockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedAt, opts...).ToFunc()
}

// ByUnlockedAt orders the results by the unlocked_at field.
func ByUnlockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnlockedAt, opts...).ToFunc()
}

// ByAlertField orders the results by alert field.
func ByAlertField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertStep(), sql.OrderByField(field, opts...))
	}
}
func newAlertStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AlertTable, AlertColumn),
	)
}
