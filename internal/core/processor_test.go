package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/alerting"
	"github.com/propertyops/asset-governor/internal/anomaly"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/extract"
	"github.com/propertyops/asset-governor/internal/repository"
)

type procFixture struct {
	store *repository.MemoryStore
	blobs *extract.MemoryBlobStore
	proc  *Processor
}

func newProcFixture(t *testing.T) *procFixture {
	t.Helper()
	store := repository.NewMemoryStore()
	blobs := extract.NewMemoryBlobStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	proc := NewProcessor(
		blobs,
		extract.NewJSONExtractor(),
		store.Metrics(),
		store.Properties(),
		anomaly.New(anomaly.Config{Window: 5, MinSamples: 5}),
		alerting.NewManager(store.Alerts(), log),
		log,
	)
	return &procFixture{store: store, blobs: blobs, proc: proc}
}

func (f *procFixture) job(propertyID uuid.UUID, ref string) *entity.ProcessingJob {
	return &entity.ProcessingJob{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		PropertyID: propertyID,
		BlobRef:    ref,
	}
}

func TestProcess_PersistsAndAlerts(t *testing.T) {
	ctx := context.Background()
	f := newProcFixture(t)
	propertyID := uuid.New()
	f.blobs.Put("docs/q3.json", []byte(`{
		"period": "2026-07",
		"metrics": {"coverage_ratio": 1.10, "occupancy": 0.92, "noi": 180000}
	}`))

	res, err := f.proc.Process(ctx, f.job(propertyID, "docs/q3.json"))
	require.NoError(t, err)
	require.Equal(t, "2026-07", res.Period)
	require.Len(t, res.Persisted, 3)

	// Only the coverage breach alerts; occupancy and NOI are clean.
	require.Len(t, res.AlertsRaised, 1)
	require.Equal(t, constants.AlertCoverageBreach, res.AlertsRaised[0].AlertType)

	current, err := f.store.Metrics().Current(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, current, 3)
	for _, m := range current {
		require.Equal(t, 1, m.Version)
	}
}

func TestProcess_ReprocessingIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newProcFixture(t)
	propertyID := uuid.New()
	f.blobs.Put("docs/q3.json", []byte(`{"period": "2026-07", "metrics": {"coverage_ratio": 1.10}}`))

	job := f.job(propertyID, "docs/q3.json")
	_, err := f.proc.Process(ctx, job)
	require.NoError(t, err)
	_, err = f.proc.Process(ctx, job)
	require.NoError(t, err)

	// History still shows one point for the period; the rerun produced a
	// new version, not a duplicate.
	hist, err := f.store.Metrics().History(ctx, propertyID, constants.MetricCoverageRatio)
	require.NoError(t, err)
	require.Len(t, hist, 1)

	current, err := f.store.Metrics().Current(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, current, 1)
	require.Equal(t, 2, current[0].Version)

	// And the repeat violation was absorbed by the pending alert.
	alerts, err := f.store.Alerts().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
}

func TestProcess_CorrectionReplacesValue(t *testing.T) {
	ctx := context.Background()
	f := newProcFixture(t)
	propertyID := uuid.New()
	f.blobs.Put("docs/v1.json", []byte(`{"period": "2026-07", "metrics": {"occupancy": 0.91}}`))
	f.blobs.Put("docs/v2.json", []byte(`{"period": "2026-07", "metrics": {"occupancy": 0.93}}`))

	_, err := f.proc.Process(ctx, f.job(propertyID, "docs/v1.json"))
	require.NoError(t, err)
	_, err = f.proc.Process(ctx, f.job(propertyID, "docs/v2.json"))
	require.NoError(t, err)

	hist, err := f.store.Metrics().History(ctx, propertyID, constants.MetricOccupancyRate)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	require.Equal(t, 0.93, hist[0].Value)
}

func TestProcess_AnomalyOnSpike(t *testing.T) {
	ctx := context.Background()
	f := newProcFixture(t)
	propertyID := uuid.New()

	values := []float64{100000, 102000, 101000, 99000, 103000, 250000}
	for i, v := range values {
		ref := fmt.Sprintf("docs/%d.json", i)
		f.blobs.Put(ref, []byte(fmt.Sprintf(`{"period": "2026-%02d", "metrics": {"rental_income": %v}}`, i+1, v)))
		res, err := f.proc.Process(ctx, f.job(propertyID, ref))
		require.NoError(t, err)
		if i < len(values)-1 {
			require.Empty(t, res.AlertsRaised, "month %d must not alert", i+1)
		} else {
			require.Len(t, res.AlertsRaised, 1)
			require.Equal(t, constants.AlertMetricAnomaly, res.AlertsRaised[0].AlertType)
		}
	}
}

func TestProcess_LateDocumentJudgedAgainstItsOwnPast(t *testing.T) {
	ctx := context.Background()
	f := newProcFixture(t)
	propertyID := uuid.New()

	// Seven quiet months land first, including a gap at 2026-03.
	for i, v := range []float64{100000, 101000, 99000, 100500, 100200, 99800} {
		month := i + 1
		if month >= 3 {
			month++
		}
		ref := fmt.Sprintf("docs/%d.json", month)
		f.blobs.Put(ref, []byte(fmt.Sprintf(`{"period": "2026-%02d", "metrics": {"rental_income": %v}}`, month, v)))
		_, err := f.proc.Process(ctx, f.job(propertyID, ref))
		require.NoError(t, err)
	}

	// The late March filing is ordinary for early 2026; the detector sees
	// only the two months before it and yields no verdict, so no alert.
	f.blobs.Put("docs/late.json", []byte(`{"period": "2026-03", "metrics": {"rental_income": 100800}}`))
	res, err := f.proc.Process(ctx, f.job(propertyID, "docs/late.json"))
	require.NoError(t, err)
	require.Empty(t, res.AlertsRaised)
}

func TestProcess_MissingBlobIsExtractionError(t *testing.T) {
	ctx := context.Background()
	f := newProcFixture(t)

	_, err := f.proc.Process(ctx, f.job(uuid.New(), "docs/missing.json"))
	require.ErrorIs(t, err, common.ErrExtraction)
}

func TestProcess_CanceledContext(t *testing.T) {
	f := newProcFixture(t)
	f.blobs.Put("docs/a.json", []byte(`{"period": "2026-07", "metrics": {"dscr": 1.5}}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.proc.Process(ctx, f.job(uuid.New(), "docs/a.json"))
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrTransientInfra)
}
