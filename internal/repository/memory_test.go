package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/entity"
)

func TestMemoryMetrics_VersionSupersedes(t *testing.T) {
	ctx := context.Background()
	metrics := NewMemoryStore().Metrics()
	propertyID := uuid.New()

	row := func(value float64, period string) *entity.ExtractedMetric {
		return &entity.ExtractedMetric{
			PropertyID:       propertyID,
			MetricType:       constants.MetricCoverageRatio,
			Value:            value,
			Period:           period,
			SourceDocumentID: uuid.New(),
		}
	}

	first, err := metrics.InsertBatch(ctx, []*entity.ExtractedMetric{row(0.90, "2026-01")})
	require.NoError(t, err)
	require.Equal(t, 1, first[0].Version)

	// A correction for the same period gets the next version and becomes
	// current; the original row is never mutated.
	second, err := metrics.InsertBatch(ctx, []*entity.ExtractedMetric{row(0.95, "2026-01")})
	require.NoError(t, err)
	require.Equal(t, 2, second[0].Version)

	hist, err := metrics.History(ctx, propertyID, constants.MetricCoverageRatio)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	require.Equal(t, 0.95, hist[0].Value)

	_, err = metrics.InsertBatch(ctx, []*entity.ExtractedMetric{row(1.10, "2026-02")})
	require.NoError(t, err)

	current, err := metrics.Current(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, current, 1)
	require.Equal(t, "2026-02", current[0].Period)
	require.Equal(t, 1.10, current[0].Value)

	ids, err := metrics.PropertyIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{propertyID}, ids)
}

func TestMemoryAlerts_CreateWithLockAtomic(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	propertyID := uuid.New()

	alert, lock, err := store.Alerts().CreateWithLock(ctx,
		&entity.CommitteeAlert{
			PropertyID:     propertyID,
			AlertType:      constants.AlertCoverageBreach,
			MetricType:     constants.MetricCoverageRatio,
			Severity:       constants.SeverityCritical,
			MetricSnapshot: json.RawMessage(`{"value":1.1}`),
		},
		&entity.WorkflowLock{
			LockType:       constants.LockRefinanceBlock,
			BlockedActions: []constants.ActionType{constants.ActionRefinance, constants.ActionSell},
		},
	)
	require.NoError(t, err)
	require.Equal(t, constants.AlertStatusPending, alert.Status)
	require.Equal(t, constants.LockStatusLocked, lock.Status)
	require.Equal(t, alert.ID, lock.AlertID)
	require.Equal(t, propertyID, lock.PropertyID)
	require.Equal(t, alert.CreatedAt, lock.LockedAt)

	owned, err := store.Locks().ByAlert(ctx, alert.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.Equal(t, lock.ID, owned[0].ID)
}

func TestMemoryAlerts_OnePendingPerSignature(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	propertyID := uuid.New()

	pending := func() (*entity.CommitteeAlert, *entity.WorkflowLock, error) {
		return store.Alerts().CreateWithLock(ctx,
			&entity.CommitteeAlert{
				PropertyID: propertyID,
				AlertType:  constants.AlertCoverageBreach,
				MetricType: constants.MetricCoverageRatio,
				Severity:   constants.SeverityCritical,
			},
			&entity.WorkflowLock{
				LockType:       constants.LockRefinanceBlock,
				BlockedActions: []constants.ActionType{constants.ActionRefinance},
			},
		)
	}

	first, _, err := pending()
	require.NoError(t, err)

	// A second pending alert for the same signature hits the constraint and
	// nothing is written, lock included.
	_, _, err = pending()
	require.ErrorIs(t, err, common.ErrDuplicatePending)

	alerts, err := store.Alerts().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	locks, err := store.Locks().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, locks, 1)

	// A different metric type is a different signature.
	_, _, err = store.Alerts().CreateWithLock(ctx,
		&entity.CommitteeAlert{
			PropertyID: propertyID,
			AlertType:  constants.AlertOccupancyBreach,
			MetricType: constants.MetricOccupancyRate,
			Severity:   constants.SeverityWarning,
		},
		&entity.WorkflowLock{
			LockType:       constants.LockSaleHold,
			BlockedActions: []constants.ActionType{constants.ActionSell},
		},
	)
	require.NoError(t, err)

	// Once the pending alert resolves, the signature is free again.
	_, err = store.Alerts().ResolveCascade(ctx, first.ID, constants.DecisionApproved, "committee", "")
	require.NoError(t, err)
	_, _, err = pending()
	require.NoError(t, err)
}

func TestMemoryAlerts_ResolveCascadeOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	propertyID := uuid.New()

	alert, _, err := store.Alerts().CreateWithLock(ctx,
		&entity.CommitteeAlert{
			PropertyID: propertyID,
			AlertType:  constants.AlertOccupancyBreach,
			MetricType: constants.MetricOccupancyRate,
			Severity:   constants.SeverityWarning,
		},
		&entity.WorkflowLock{
			LockType:       constants.LockSaleHold,
			BlockedActions: []constants.ActionType{constants.ActionSell},
		},
	)
	require.NoError(t, err)

	released, err := store.Alerts().ResolveCascade(ctx, alert.ID, constants.DecisionApproved, "committee", "ok")
	require.NoError(t, err)
	require.Len(t, released, 1)
	require.Equal(t, constants.LockStatusUnlocked, released[0].Status)
	require.NotNil(t, released[0].UnlockedAt)

	resolved, err := store.Alerts().Get(ctx, alert.ID)
	require.NoError(t, err)
	require.Equal(t, constants.AlertStatusApproved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	require.Equal(t, "committee", *resolved.ResolvedBy)

	_, err = store.Alerts().ResolveCascade(ctx, alert.ID, constants.DecisionRejected, "committee", "again")
	require.ErrorIs(t, err, common.ErrInvariantViolation)

	// The first resolution stands untouched.
	still, err := store.Alerts().Get(ctx, alert.ID)
	require.NoError(t, err)
	require.Equal(t, constants.AlertStatusApproved, still.Status)

	// An unknown alert id is not-found, not an invariant violation.
	_, err = store.Alerts().ResolveCascade(ctx, uuid.New(), constants.DecisionApproved, "committee", "")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryJobs_ClaimIsCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	jobs := NewMemoryStore().Jobs()

	job, err := jobs.Create(ctx, &entity.ProcessingJob{
		DocumentID: uuid.New(),
		PropertyID: uuid.New(),
		BlobRef:    "docs/2026-01.json",
	})
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusQueued, job.Status)

	claimed, err := jobs.MarkProcessing(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, 1, claimed.AttemptCount)

	_, err = jobs.MarkProcessing(ctx, job.ID)
	require.ErrorIs(t, err, common.ErrInvariantViolation)

	// Cancel only wins while the job is still queued.
	canceled, err := jobs.Cancel(ctx, job.ID)
	require.NoError(t, err)
	require.False(t, canceled)
}

func TestMemoryLocks_ExpireOlderThanIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, _, err := store.Alerts().CreateWithLock(ctx,
		&entity.CommitteeAlert{
			PropertyID: uuid.New(),
			AlertType:  constants.AlertMetricAnomaly,
			MetricType: constants.MetricExpenseRatio,
			Severity:   constants.SeverityWarning,
		},
		&entity.WorkflowLock{
			LockType:       constants.LockDispositionBlock,
			BlockedActions: []constants.ActionType{constants.ActionDispose},
		},
	)
	require.NoError(t, err)

	cutoff := time.Now().UTC().Add(time.Minute)
	n, err := store.Locks().ExpireOlderThan(ctx, cutoff)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = store.Locks().ExpireOlderThan(ctx, cutoff)
	require.NoError(t, err)
	require.Zero(t, n)
}
