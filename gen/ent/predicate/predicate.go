// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CommitteeAlert is the predicate function for committeealert builders.
type CommitteeAlert func(*sql.Selector)

// ExtractedMetric is the predicate function for extractedmetric builders.
type ExtractedMetric func(*sql.Selector)

// ProcessingJob is the predicate function for processingjob builders.
type ProcessingJob func(*sql.Selector)

// Property is the predicate function for property builders.
type Property func(*sql.Selector)

// WorkflowLock is the predicate function for workflowlock builders.
type WorkflowLock func(*sql.Selector)
