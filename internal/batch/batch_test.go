package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/alerting"
	"github.com/propertyops/asset-governor/internal/anomaly"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/locking"
	"github.com/propertyops/asset-governor/internal/repository"
)

func newRunner(t *testing.T, store *repository.MemoryStore, lockTTL time.Duration) *Runner {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRunner(
		store.Metrics(),
		store.Properties(),
		anomaly.New(anomaly.Config{Window: 5, MinSamples: 5}),
		alerting.NewManager(store.Alerts(), log),
		locking.NewManager(store.Alerts(), store.Locks(), lockTTL, log),
		log,
		WithConcurrency(4),
	)
}

func seedSeries(t *testing.T, store *repository.MemoryStore, propertyID uuid.UUID, metricType constants.MetricType, values []float64) {
	t.Helper()
	for i, v := range values {
		_, err := store.Metrics().InsertBatch(context.Background(), []*entity.ExtractedMetric{{
			PropertyID:       propertyID,
			MetricType:       metricType,
			Value:            v,
			Period:           fmt.Sprintf("2026-%02d", i+1),
			SourceDocumentID: uuid.New(),
		}})
		require.NoError(t, err)
	}
}

func TestRun_FlagsDriftAcrossProperties(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	runner := newRunner(t, store, time.Hour)

	quiet := uuid.New()
	spiky := uuid.New()
	breached := uuid.New()
	seedSeries(t, store, quiet, constants.MetricRentalIncome, []float64{100, 101, 99, 100, 102, 100})
	seedSeries(t, store, spiky, constants.MetricRentalIncome, []float64{100, 102, 101, 99, 103, 250})
	seedSeries(t, store, breached, constants.MetricCoverageRatio, []float64{1.10})

	sum, err := runner.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, sum.Properties)
	require.Equal(t, 3, sum.MetricsEvaluated)
	require.Equal(t, 2, sum.AlertsRaised)

	quietAlerts, err := store.Alerts().ListByProperty(ctx, quiet)
	require.NoError(t, err)
	require.Empty(t, quietAlerts)

	spikyAlerts, err := store.Alerts().ListByProperty(ctx, spiky)
	require.NoError(t, err)
	require.Len(t, spikyAlerts, 1)
	require.Equal(t, constants.AlertMetricAnomaly, spikyAlerts[0].AlertType)

	breachedAlerts, err := store.Alerts().ListByProperty(ctx, breached)
	require.NoError(t, err)
	require.Len(t, breachedAlerts, 1)
	require.Equal(t, constants.AlertCoverageBreach, breachedAlerts[0].AlertType)
}

func TestRun_RerunDoesNotDuplicateAlerts(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	runner := newRunner(t, store, time.Hour)

	propertyID := uuid.New()
	seedSeries(t, store, propertyID, constants.MetricCoverageRatio, []float64{1.10})

	_, err := runner.Run(ctx)
	require.NoError(t, err)
	_, err = runner.Run(ctx)
	require.NoError(t, err)

	alerts, err := store.Alerts().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	locks, err := store.Locks().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, locks, 1)
}

func TestRun_ExpiresStaleLocks(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	// Negative TTL makes every live lock stale.
	runner := newRunner(t, store, -time.Minute)

	propertyID := uuid.New()
	lockType, actions := locking.SpecFor(constants.AlertCoverageBreach)
	_, _, err := store.Alerts().CreateWithLock(ctx,
		&entity.CommitteeAlert{
			PropertyID: propertyID,
			AlertType:  constants.AlertCoverageBreach,
			MetricType: constants.MetricCoverageRatio,
			Severity:   constants.SeverityCritical,
		},
		&entity.WorkflowLock{LockType: lockType, BlockedActions: actions},
	)
	require.NoError(t, err)

	sum, err := runner.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, sum.LocksExpired)

	active, err := store.Locks().ActiveByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Empty(t, active)
}

func TestRun_EmptyStore(t *testing.T) {
	store := repository.NewMemoryStore()
	runner := newRunner(t, store, time.Hour)

	sum, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, sum.Properties)
	require.Equal(t, 0, sum.AlertsRaised)
}
