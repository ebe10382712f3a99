package constants

// JobStatus is the canonical status for rows in processing_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued     JobStatus = "QUEUED"     // accepted, waiting for a worker
	JobStatusProcessing JobStatus = "PROCESSING" // a worker holds the lease
	JobStatusProcessed  JobStatus = "PROCESSED"  // terminal success
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure
	JobStatusCanceled   JobStatus = "CANCELED"   // canceled before a worker picked it up
)

// JobStatusValues lists every job status for schema validation.
func JobStatusValues() []string {
	return []string{
		string(JobStatusQueued),
		string(JobStatusProcessing),
		string(JobStatusProcessed),
		string(JobStatusFailed),
		string(JobStatusCanceled),
	}
}

// IsTerminalJobStatus reports whether a job status admits no further transitions.
func IsTerminalJobStatus(s JobStatus) bool {
	return s == JobStatusProcessed || s == JobStatusFailed || s == JobStatusCanceled
}

// AlertStatus is the canonical status for rows in committee_alert.
type AlertStatus string

const (
	AlertStatusPending  AlertStatus = "PENDING"
	AlertStatusApproved AlertStatus = "APPROVED"
	AlertStatusRejected AlertStatus = "REJECTED"
	AlertStatusExpired  AlertStatus = "EXPIRED"
)

func AlertStatusValues() []string {
	return []string{
		string(AlertStatusPending),
		string(AlertStatusApproved),
		string(AlertStatusRejected),
		string(AlertStatusExpired),
	}
}

// LockStatus is the canonical status for rows in workflow_lock.
// LOCKED is the only non-terminal state.
type LockStatus string

const (
	LockStatusLocked   LockStatus = "LOCKED"
	LockStatusUnlocked LockStatus = "UNLOCKED"
	LockStatusExpired  LockStatus = "EXPIRED"
)

func LockStatusValues() []string {
	return []string{
		string(LockStatusLocked),
		string(LockStatusUnlocked),
		string(LockStatusExpired),
	}
}

// Severity classifies how bad a threshold breach or anomaly is.
type Severity string

const (
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

func SeverityValues() []string {
	return []string{string(SeverityWarning), string(SeverityCritical)}
}

// Rank orders severities so callers can take the maximum of two verdicts.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	}
	return 0
}

// MaxSeverity returns the worse of two severities.
func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}
