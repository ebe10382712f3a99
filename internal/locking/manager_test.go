package locking

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/repository"
)

func newTestManager(t *testing.T, ttl time.Duration) (*Manager, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(store.Alerts(), store.Locks(), ttl, log), store
}

// metricFor picks the metric type that would have tripped the alert, so each
// seeded alert carries a distinct pending signature per property.
func metricFor(alertType constants.AlertType) constants.MetricType {
	switch alertType {
	case constants.AlertCoverageBreach:
		return constants.MetricCoverageRatio
	case constants.AlertOccupancyBreach:
		return constants.MetricOccupancyRate
	case constants.AlertExpenseBreach:
		return constants.MetricExpenseRatio
	default:
		return constants.MetricRentalIncome
	}
}

// seedAlert creates a pending alert with its lock the way AlertManager would.
func seedAlert(t *testing.T, store *repository.MemoryStore, propertyID uuid.UUID, alertType constants.AlertType) (*entity.CommitteeAlert, *entity.WorkflowLock) {
	t.Helper()
	lockType, actions := SpecFor(alertType)
	alert, lock, err := store.Alerts().CreateWithLock(context.Background(),
		&entity.CommitteeAlert{
			PropertyID: propertyID,
			AlertType:  alertType,
			MetricType: metricFor(alertType),
			Severity:   constants.SeverityCritical,
		},
		&entity.WorkflowLock{LockType: lockType, BlockedActions: actions},
	)
	require.NoError(t, err)
	return alert, lock
}

func TestSpecFor(t *testing.T) {
	lockType, actions := SpecFor(constants.AlertCoverageBreach)
	require.Equal(t, constants.LockRefinanceBlock, lockType)
	require.ElementsMatch(t, []constants.ActionType{constants.ActionRefinance, constants.ActionSell}, actions)

	lockType, actions = SpecFor(constants.AlertOccupancyBreach)
	require.Equal(t, constants.LockSaleHold, lockType)
	require.ElementsMatch(t, []constants.ActionType{constants.ActionSell}, actions)

	lockType, actions = SpecFor(constants.AlertMetricAnomaly)
	require.Equal(t, constants.LockDispositionBlock, lockType)
	require.ElementsMatch(t, []constants.ActionType{constants.ActionDispose}, actions)

	lockType, _ = SpecFor(constants.AlertExpenseBreach)
	require.Equal(t, constants.LockDispositionBlock, lockType)
}

func TestIsActionBlocked(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t, time.Hour)
	propertyID := uuid.New()
	seedAlert(t, store, propertyID, constants.AlertCoverageBreach)

	blocked, err := mgr.IsActionBlocked(ctx, propertyID, constants.ActionRefinance)
	require.NoError(t, err)
	require.True(t, blocked)

	blocked, err = mgr.IsActionBlocked(ctx, propertyID, constants.ActionDispose)
	require.NoError(t, err)
	require.False(t, blocked)

	// Other properties are unaffected.
	blocked, err = mgr.IsActionBlocked(ctx, uuid.New(), constants.ActionRefinance)
	require.NoError(t, err)
	require.False(t, blocked)

	err = mgr.CheckAction(ctx, propertyID, constants.ActionSell)
	require.ErrorIs(t, err, common.ErrActionBlocked)
	require.NoError(t, mgr.CheckAction(ctx, propertyID, constants.ActionDispose))
}

func TestIsActionBlocked_RandomizedLockSets(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))
	alertTypes := []constants.AlertType{
		constants.AlertCoverageBreach,
		constants.AlertOccupancyBreach,
		constants.AlertExpenseBreach,
		constants.AlertMetricAnomaly,
	}
	allActions := []constants.ActionType{
		constants.ActionRefinance,
		constants.ActionSell,
		constants.ActionDispose,
	}

	for round := 0; round < 25; round++ {
		mgr, store := newTestManager(t, time.Hour)
		propertyID := uuid.New()

		// Random subset of alert types, each resolved or left pending at
		// random. Only locks still LOCKED may block.
		expected := make(map[constants.ActionType]bool)
		for _, alertType := range alertTypes {
			if rng.Intn(2) == 0 {
				continue
			}
			alert, lock := seedAlert(t, store, propertyID, alertType)
			if rng.Intn(2) == 0 {
				_, err := mgr.Resolve(ctx, alert.ID, constants.DecisionApproved, "committee@propertyops", "")
				require.NoError(t, err)
				continue
			}
			for _, a := range lock.BlockedActions {
				expected[a] = true
			}
		}

		for _, action := range allActions {
			blocked, err := mgr.IsActionBlocked(ctx, propertyID, action)
			require.NoError(t, err)
			require.Equal(t, expected[action], blocked,
				"round %d: action %s, expected blocked=%v", round, action, expected[action])
		}
	}
}

func TestResolve_ReleasesLocks(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t, time.Hour)
	propertyID := uuid.New()
	alert, _ := seedAlert(t, store, propertyID, constants.AlertCoverageBreach)

	locks, err := mgr.Resolve(ctx, alert.ID, constants.DecisionApproved, "committee@propertyops", "refi approved with conditions")
	require.NoError(t, err)
	require.Len(t, locks, 1)
	require.Equal(t, constants.LockStatusUnlocked, locks[0].Status)
	require.NotNil(t, locks[0].UnlockedAt)

	// The recorded duration is exactly the locked-to-unlocked span, and the
	// span itself is tiny for a lock released moments after creation.
	require.Equal(t, locks[0].UnlockedAt.Sub(locks[0].LockedAt), locks[0].Duration(time.Now()))
	require.WithinDuration(t, locks[0].LockedAt, *locks[0].UnlockedAt, 5*time.Second)

	blocked, err := mgr.IsActionBlocked(ctx, propertyID, constants.ActionRefinance)
	require.NoError(t, err)
	require.False(t, blocked)

	stored, err := store.Alerts().Get(ctx, alert.ID)
	require.NoError(t, err)
	require.Equal(t, constants.AlertStatusApproved, stored.Status)
	require.NotNil(t, stored.ResolvedAt)
	require.Equal(t, "committee@propertyops", *stored.ResolvedBy)
}

func TestResolve_Rejected(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t, time.Hour)
	alert, _ := seedAlert(t, store, uuid.New(), constants.AlertOccupancyBreach)

	_, err := mgr.Resolve(ctx, alert.ID, constants.DecisionRejected, "committee@propertyops", "")
	require.NoError(t, err)

	stored, err := store.Alerts().Get(ctx, alert.ID)
	require.NoError(t, err)
	require.Equal(t, constants.AlertStatusRejected, stored.Status)

	// Rejection still releases the lock; the alert, not the lock, carries
	// the verdict.
	locks, err := store.Locks().ByAlert(ctx, alert.ID)
	require.NoError(t, err)
	require.Len(t, locks, 1)
	require.Equal(t, constants.LockStatusUnlocked, locks[0].Status)
}

func TestResolve_DoubleResolveRejected(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t, time.Hour)
	alert, _ := seedAlert(t, store, uuid.New(), constants.AlertCoverageBreach)

	_, err := mgr.Resolve(ctx, alert.ID, constants.DecisionApproved, "a@propertyops", "")
	require.NoError(t, err)

	_, err = mgr.Resolve(ctx, alert.ID, constants.DecisionRejected, "b@propertyops", "")
	require.ErrorIs(t, err, common.ErrInvariantViolation)

	// First resolution stands untouched.
	stored, err := store.Alerts().Get(ctx, alert.ID)
	require.NoError(t, err)
	require.Equal(t, constants.AlertStatusApproved, stored.Status)
	require.Equal(t, "a@propertyops", *stored.ResolvedBy)
}

func TestResolve_InvalidInput(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t, time.Hour)
	alert, _ := seedAlert(t, store, uuid.New(), constants.AlertCoverageBreach)

	_, err := mgr.Resolve(ctx, alert.ID, constants.ResolutionDecision("MAYBE"), "a@propertyops", "")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = mgr.Resolve(ctx, alert.ID, constants.DecisionApproved, "", "")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	// An unknown alert id is not-found, never an invariant violation.
	_, err = mgr.Resolve(ctx, uuid.New(), constants.DecisionApproved, "a@propertyops", "")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NotErrorIs(t, err, common.ErrInvariantViolation)
}

func TestExpireSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("stale locks expire, sweep is idempotent", func(t *testing.T) {
		// Negative TTL puts the cutoff in the future so every lock is stale.
		mgr, store := newTestManager(t, -time.Minute)
		propertyID := uuid.New()
		alert, _ := seedAlert(t, store, propertyID, constants.AlertCoverageBreach)

		n, err := mgr.ExpireSweep(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		locks, err := store.Locks().ByAlert(ctx, alert.ID)
		require.NoError(t, err)
		require.Len(t, locks, 1)
		require.Equal(t, constants.LockStatusExpired, locks[0].Status)
		require.NotNil(t, locks[0].UnlockedAt)

		// Expired locks no longer block anything.
		blocked, err := mgr.IsActionBlocked(ctx, propertyID, constants.ActionRefinance)
		require.NoError(t, err)
		require.False(t, blocked)

		// A second sweep finds nothing: EXPIRED is terminal.
		n, err = mgr.ExpireSweep(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, n)
	})

	t.Run("young locks survive", func(t *testing.T) {
		mgr, store := newTestManager(t, time.Hour)
		alert, _ := seedAlert(t, store, uuid.New(), constants.AlertCoverageBreach)

		n, err := mgr.ExpireSweep(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, n)

		locks, err := store.Locks().ByAlert(ctx, alert.ID)
		require.NoError(t, err)
		require.Equal(t, constants.LockStatusLocked, locks[0].Status)
	})

	t.Run("expired lock stays expired after resolution attempt", func(t *testing.T) {
		mgr, store := newTestManager(t, -time.Minute)
		alert, _ := seedAlert(t, store, uuid.New(), constants.AlertCoverageBreach)

		_, err := mgr.ExpireSweep(ctx)
		require.NoError(t, err)

		// Resolving the still-pending alert releases nothing extra; the
		// expired lock keeps its EXPIRED status rather than flipping to
		// UNLOCKED.
		locks, err := mgr.Resolve(ctx, alert.ID, constants.DecisionApproved, "a@propertyops", "")
		require.NoError(t, err)
		require.Len(t, locks, 1)
		require.Equal(t, constants.LockStatusExpired, locks[0].Status)
	})
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t, time.Hour)
	propertyID := uuid.New()

	alertA, _ := seedAlert(t, store, propertyID, constants.AlertCoverageBreach)
	seedAlert(t, store, propertyID, constants.AlertOccupancyBreach)

	_, err := mgr.Resolve(ctx, alertA.ID, constants.DecisionApproved, "a@propertyops", "")
	require.NoError(t, err)

	sum, err := mgr.Summary(ctx, propertyID)
	require.NoError(t, err)
	require.Equal(t, propertyID, sum.PropertyID)
	require.Equal(t, 2, sum.TotalLocks)
	require.Equal(t, 1, sum.ActiveLocks)
	require.ElementsMatch(t, []constants.ActionType{constants.ActionSell}, sum.BlockedActions)
}
