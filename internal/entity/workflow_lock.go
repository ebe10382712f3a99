package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
)

// WorkflowLock represents a workflow lock for data transfer between layers.
type WorkflowLock struct {
	ID             uuid.UUID              `json:"id"`
	PropertyID     uuid.UUID              `json:"property_id"`
	AlertID        uuid.UUID              `json:"alert_id"`
	LockType       constants.LockType     `json:"lock_type"`
	BlockedActions []constants.ActionType `json:"blocked_actions"`
	Status         constants.LockStatus   `json:"status"`
	LockedAt       time.Time              `json:"locked_at"`
	UnlockedAt     *time.Time             `json:"unlocked_at,omitempty"`
}

// Duration is the time the lock was (or has been) in effect.
// For still-locked rows it is measured against now.
func (l *WorkflowLock) Duration(now time.Time) time.Duration {
	if l.UnlockedAt != nil {
		return l.UnlockedAt.Sub(l.LockedAt)
	}
	return now.Sub(l.LockedAt)
}

// Blocks reports whether the lock names the given action.
// It does not consider lock status; callers filter on LOCKED first.
func (l *WorkflowLock) Blocks(action constants.ActionType) bool {
	for _, a := range l.BlockedActions {
		if a == action {
			return true
		}
	}
	return false
}

// LockSummary aggregates a property's lock state for reporting callers.
type LockSummary struct {
	PropertyID     uuid.UUID              `json:"property_id"`
	ActiveLocks    int                    `json:"active_locks"`
	TotalLocks     int                    `json:"total_locks"`
	BlockedActions []constants.ActionType `json:"blocked_actions"`
	AvgDuration    time.Duration          `json:"avg_duration"`
}
