package locking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/repository"
)

// SpecFor maps an alert type onto the lock it must create. Coverage breaches
// freeze debt actions, occupancy breaches hold sales, everything else blocks
// disposition until the committee looks at it.
func SpecFor(alertType constants.AlertType) (constants.LockType, []constants.ActionType) {
	switch alertType {
	case constants.AlertCoverageBreach:
		return constants.LockRefinanceBlock, []constants.ActionType{constants.ActionRefinance, constants.ActionSell}
	case constants.AlertOccupancyBreach:
		return constants.LockSaleHold, []constants.ActionType{constants.ActionSell}
	default:
		return constants.LockDispositionBlock, []constants.ActionType{constants.ActionDispose}
	}
}

// Manager owns the workflow-lock state machine. Locks are created through
// AlertManager (same transaction as the alert); Manager handles resolution,
// expiry, and the blocked-action checks the rest of the system asks about.
type Manager struct {
	alerts repository.AlertRepository
	locks  repository.LockRepository
	ttl    time.Duration
	log    *slog.Logger
}

func NewManager(alerts repository.AlertRepository, locks repository.LockRepository, ttl time.Duration, log *slog.Logger) *Manager {
	return &Manager{alerts: alerts, locks: locks, ttl: ttl, log: log}
}

// Resolve records the committee decision on a pending alert and releases
// every lock the alert owns, in one transaction. Resolving a non-pending
// alert fails with an invariant violation and changes nothing.
func (m *Manager) Resolve(ctx context.Context, alertID uuid.UUID, decision constants.ResolutionDecision, approver, notes string) ([]*entity.WorkflowLock, error) {
	switch decision {
	case constants.DecisionApproved, constants.DecisionRejected:
	default:
		return nil, common.NewAppError("INVALID_DECISION", fmt.Sprintf("unknown resolution decision %q", decision), common.ErrInvalidInput)
	}
	if approver == "" {
		return nil, common.NewAppError("INVALID_DECISION", "approver is required", common.ErrInvalidInput)
	}
	locks, err := m.alerts.ResolveCascade(ctx, alertID, decision, approver, notes)
	if err != nil {
		return nil, err
	}
	m.log.Info("locks released",
		"alert_id", alertID,
		"decision", decision,
		"approver", approver,
		"locks", len(locks),
	)
	return locks, nil
}

// IsActionBlocked reports whether any active lock on the property names the
// action. Unlocked and expired locks never block.
func (m *Manager) IsActionBlocked(ctx context.Context, propertyID uuid.UUID, action constants.ActionType) (bool, error) {
	active, err := m.locks.ActiveByProperty(ctx, propertyID)
	if err != nil {
		return false, err
	}
	for _, l := range active {
		if l.Blocks(action) {
			return true, nil
		}
	}
	return false, nil
}

// CheckAction is IsActionBlocked as a guard: nil when the action may proceed,
// ErrActionBlocked when a lock names it.
func (m *Manager) CheckAction(ctx context.Context, propertyID uuid.UUID, action constants.ActionType) error {
	blocked, err := m.IsActionBlocked(ctx, propertyID, action)
	if err != nil {
		return err
	}
	if blocked {
		return common.NewAppError("ACTION_BLOCKED", fmt.Sprintf("%s is blocked on property %s", action, propertyID), common.ErrActionBlocked)
	}
	return nil
}

// ActiveLocks returns the locks currently in LOCKED state for a property.
func (m *Manager) ActiveLocks(ctx context.Context, propertyID uuid.UUID) ([]*entity.WorkflowLock, error) {
	return m.locks.ActiveByProperty(ctx, propertyID)
}

// Summary aggregates a property's lock history for reporting.
func (m *Manager) Summary(ctx context.Context, propertyID uuid.UUID) (*entity.LockSummary, error) {
	all, err := m.locks.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	sum := &entity.LockSummary{PropertyID: propertyID, TotalLocks: len(all)}
	seen := make(map[constants.ActionType]bool)
	var total time.Duration
	for _, l := range all {
		total += l.Duration(now)
		if l.Status != constants.LockStatusLocked {
			continue
		}
		sum.ActiveLocks++
		for _, a := range l.BlockedActions {
			if !seen[a] {
				seen[a] = true
				sum.BlockedActions = append(sum.BlockedActions, a)
			}
		}
	}
	if len(all) > 0 {
		sum.AvgDuration = total / time.Duration(len(all))
	}
	return sum, nil
}

// ExpireSweep transitions every lock held longer than the TTL to EXPIRED.
// Safe to run concurrently and repeatedly; already-expired locks never match.
func (m *Manager) ExpireSweep(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-m.ttl)
	n, err := m.locks.ExpireOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		m.log.Info("lock expiry sweep", "expired", n, "ttl", m.ttl)
	}
	return n, nil
}
