package alerting

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/anomaly"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/repository"
)

func newTestManager(t *testing.T, opts ...Option) (*Manager, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(store.Alerts(), log, opts...), store
}

func metricRow(propertyID uuid.UUID, metricType constants.MetricType, value float64) *entity.ExtractedMetric {
	return &entity.ExtractedMetric{
		ID:         uuid.New(),
		PropertyID: propertyID,
		MetricType: metricType,
		Value:      value,
		Period:     "2026-07",
	}
}

func TestEvaluateMetric_StaticBreach(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t)
	propertyID := uuid.New()

	alert, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricCoverageRatio, 1.10), anomaly.Result{})
	require.NoError(t, err)
	require.NotNil(t, alert)
	require.Equal(t, constants.AlertCoverageBreach, alert.AlertType)
	require.Equal(t, constants.SeverityCritical, alert.Severity)
	require.Equal(t, constants.AlertStatusPending, alert.Status)

	snap, err := entity.DecodeSnapshot(alert.MetricSnapshot)
	require.NoError(t, err)
	require.Equal(t, 1.10, snap.Value)
	require.Equal(t, 1.25, snap.Threshold)

	locks, err := store.Locks().ActiveByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, locks, 1)
	require.Equal(t, constants.LockRefinanceBlock, locks[0].LockType)
	require.Equal(t, alert.ID, locks[0].AlertID)
	require.True(t, locks[0].Blocks(constants.ActionRefinance))
	require.True(t, locks[0].Blocks(constants.ActionSell))
	require.False(t, locks[0].Blocks(constants.ActionDispose))
}

func TestEvaluateMetric_CleanMetric(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t)
	propertyID := uuid.New()

	alert, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricCoverageRatio, 1.40), anomaly.Result{Evaluated: true})
	require.NoError(t, err)
	require.Nil(t, alert)

	alerts, err := store.Alerts().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Empty(t, alerts)
}

func TestEvaluateMetric_OccupancyTiers(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()

	t.Run("warning tier", func(t *testing.T) {
		mgr, _ := newTestManager(t)
		alert, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricOccupancyRate, 0.84), anomaly.Result{})
		require.NoError(t, err)
		require.NotNil(t, alert)
		require.Equal(t, constants.SeverityWarning, alert.Severity)
		require.Equal(t, constants.AlertOccupancyBreach, alert.AlertType)
	})

	t.Run("critical tier wins over warning tier", func(t *testing.T) {
		mgr, _ := newTestManager(t)
		alert, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricOccupancyRate, 0.79), anomaly.Result{})
		require.NoError(t, err)
		require.NotNil(t, alert)
		require.Equal(t, constants.SeverityCritical, alert.Severity)
	})
}

func TestEvaluateMetric_DedupPerSignature(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t)
	propertyID := uuid.New()

	first, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricCoverageRatio, 1.10), anomaly.Result{})
	require.NoError(t, err)
	second, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricCoverageRatio, 1.05), anomaly.Result{})
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, first.CreatedAt, second.CreatedAt)

	alerts, err := store.Alerts().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	locks, err := store.Locks().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, locks, 1)
}

func TestEvaluateMetric_UpgradeEscalatesInPlace(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t)
	propertyID := uuid.New()

	warning, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricOccupancyRate, 0.84), anomaly.Result{})
	require.NoError(t, err)
	require.Equal(t, constants.SeverityWarning, warning.Severity)

	critical, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricOccupancyRate, 0.78), anomaly.Result{})
	require.NoError(t, err)
	require.Equal(t, warning.ID, critical.ID)
	require.Equal(t, constants.SeverityCritical, critical.Severity)

	stored, err := store.Alerts().Get(ctx, warning.ID)
	require.NoError(t, err)
	require.Equal(t, constants.SeverityCritical, stored.Severity)
	require.Equal(t, warning.CreatedAt, stored.CreatedAt)

	snap, err := entity.DecodeSnapshot(stored.MetricSnapshot)
	require.NoError(t, err)
	require.Equal(t, 0.78, snap.Value)
}

func TestEvaluateMetric_UpgradeOnlyIgnoresDowngrade(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t)
	propertyID := uuid.New()

	critical, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricOccupancyRate, 0.78), anomaly.Result{})
	require.NoError(t, err)
	require.Equal(t, constants.SeverityCritical, critical.Severity)

	// A later, milder breach of the same signature changes nothing.
	_, err = mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricOccupancyRate, 0.84), anomaly.Result{})
	require.NoError(t, err)

	stored, err := store.Alerts().Get(ctx, critical.ID)
	require.NoError(t, err)
	require.Equal(t, constants.SeverityCritical, stored.Severity)

	snap, err := entity.DecodeSnapshot(stored.MetricSnapshot)
	require.NoError(t, err)
	require.Equal(t, 0.78, snap.Value)
}

func TestEvaluateMetric_MergeAlwaysRefreshesSnapshot(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t, WithMergePolicy(MergeAlways))
	propertyID := uuid.New()

	critical, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricOccupancyRate, 0.78), anomaly.Result{})
	require.NoError(t, err)

	_, err = mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricOccupancyRate, 0.84), anomaly.Result{})
	require.NoError(t, err)

	stored, err := store.Alerts().Get(ctx, critical.ID)
	require.NoError(t, err)
	// Severity never downgrades, the snapshot still moves.
	require.Equal(t, constants.SeverityCritical, stored.Severity)

	snap, err := entity.DecodeSnapshot(stored.MetricSnapshot)
	require.NoError(t, err)
	require.Equal(t, 0.84, snap.Value)
}

func TestEvaluateMetric_PureAnomaly(t *testing.T) {
	ctx := context.Background()

	t.Run("default severity is warning", func(t *testing.T) {
		mgr, store := newTestManager(t)
		propertyID := uuid.New()
		verdict := anomaly.Result{Evaluated: true, IsAnomaly: true, ZScore: 2.4, Confidence: 0.6}

		alert, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricRentalIncome, 250), verdict)
		require.NoError(t, err)
		require.NotNil(t, alert)
		require.Equal(t, constants.AlertMetricAnomaly, alert.AlertType)
		require.Equal(t, constants.SeverityWarning, alert.Severity)

		locks, err := store.Locks().ActiveByProperty(ctx, propertyID)
		require.NoError(t, err)
		require.Len(t, locks, 1)
		require.Equal(t, constants.LockDispositionBlock, locks[0].LockType)
		require.True(t, locks[0].Blocks(constants.ActionDispose))
	})

	t.Run("high confidence escalates to critical", func(t *testing.T) {
		mgr, _ := newTestManager(t)
		verdict := anomaly.Result{Evaluated: true, IsAnomaly: true, ZScore: 5.1, Confidence: 0.95}

		alert, err := mgr.EvaluateMetric(ctx, metricRow(uuid.New(), constants.MetricRentalIncome, 250), verdict)
		require.NoError(t, err)
		require.NotNil(t, alert)
		require.Equal(t, constants.SeverityCritical, alert.Severity)
	})

	t.Run("unevaluated verdict never flags", func(t *testing.T) {
		mgr, _ := newTestManager(t)
		verdict := anomaly.Result{Evaluated: false, IsAnomaly: false}

		alert, err := mgr.EvaluateMetric(ctx, metricRow(uuid.New(), constants.MetricRentalIncome, 250), verdict)
		require.NoError(t, err)
		require.Nil(t, alert)
	})
}

func TestEvaluateMetric_SeverityIsMaxOfSignals(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newTestManager(t)
	propertyID := uuid.New()

	// Static rule says warning, the detector is near-certain: critical wins,
	// and the alert keeps the static breach type.
	verdict := anomaly.Result{Evaluated: true, IsAnomaly: true, ZScore: 6.0, Confidence: 0.95}
	alert, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricOccupancyRate, 0.84), verdict)
	require.NoError(t, err)
	require.NotNil(t, alert)
	require.Equal(t, constants.AlertOccupancyBreach, alert.AlertType)
	require.Equal(t, constants.SeverityCritical, alert.Severity)
}

// staleReadAlerts reports no pending alert for the first n signature lookups,
// the way a reader in one process misses an insert a concurrent process just
// committed. Everything else passes through.
type staleReadAlerts struct {
	repository.AlertRepository
	stale int
}

func (r *staleReadAlerts) PendingBySignature(ctx context.Context, propertyID uuid.UUID, metricType constants.MetricType) (*entity.CommitteeAlert, error) {
	if r.stale > 0 {
		r.stale--
		return nil, nil
	}
	return r.AlertRepository.PendingBySignature(ctx, propertyID, metricType)
}

func TestEvaluateMetric_LostInsertRaceMergesIntoWinner(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	mgr := NewManager(&staleReadAlerts{AlertRepository: store.Alerts(), stale: 1}, log)
	propertyID := uuid.New()

	// Another writer already holds the signature's pending alert.
	winner, _, err := store.Alerts().CreateWithLock(ctx,
		&entity.CommitteeAlert{
			PropertyID:     propertyID,
			AlertType:      constants.AlertCoverageBreach,
			MetricType:     constants.MetricCoverageRatio,
			Severity:       constants.SeverityWarning,
			MetricSnapshot: entity.MetricSnapshot{MetricType: constants.MetricCoverageRatio, Value: 1.20}.Encode(),
		},
		&entity.WorkflowLock{
			LockType:       constants.LockRefinanceBlock,
			BlockedActions: []constants.ActionType{constants.ActionRefinance, constants.ActionSell},
		},
	)
	require.NoError(t, err)

	// The stale read sends the manager down the create path; the store's
	// constraint rejects the duplicate and the violation merges instead.
	merged, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricCoverageRatio, 1.05), anomaly.Result{})
	require.NoError(t, err)
	require.NotNil(t, merged)
	require.Equal(t, winner.ID, merged.ID)
	require.Equal(t, constants.SeverityCritical, merged.Severity)

	alerts, err := store.Alerts().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	locks, err := store.Locks().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, locks, 1)
}

func TestEvaluateMetric_ConcurrentSameSignature(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestManager(t)
	propertyID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := mgr.EvaluateMetric(ctx, metricRow(propertyID, constants.MetricCoverageRatio, 1.10), anomaly.Result{})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	alerts, err := store.Alerts().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	locks, err := store.Locks().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, locks, 1)
}

func TestCatalog_MostSevereRuleWins(t *testing.T) {
	c := DefaultCatalog()

	rule, ok := c.Evaluate(constants.MetricOccupancyRate, 0.75)
	require.True(t, ok)
	require.Equal(t, constants.SeverityCritical, rule.Severity)

	rule, ok = c.Evaluate(constants.MetricOccupancyRate, 0.83)
	require.True(t, ok)
	require.Equal(t, constants.SeverityWarning, rule.Severity)

	_, ok = c.Evaluate(constants.MetricOccupancyRate, 0.92)
	require.False(t, ok)

	_, ok = c.Evaluate(constants.MetricNetOperatingIncome, -1000)
	require.False(t, ok)
}
