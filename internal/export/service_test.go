package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/locking"
	"github.com/propertyops/asset-governor/internal/repository"
)

func TestExportGovernanceXLSX(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(store.Alerts(), store.Locks(), store.Metrics(), log)

	propertyID := uuid.New()
	_, err := store.Metrics().InsertBatch(ctx, []*entity.ExtractedMetric{{
		PropertyID:       propertyID,
		MetricType:       constants.MetricCoverageRatio,
		Value:            1.10,
		Period:           "2026-07",
		SourceDocumentID: uuid.New(),
	}})
	require.NoError(t, err)

	lockType, actions := locking.SpecFor(constants.AlertCoverageBreach)
	_, _, err = store.Alerts().CreateWithLock(ctx,
		&entity.CommitteeAlert{
			PropertyID: propertyID,
			AlertType:  constants.AlertCoverageBreach,
			MetricType: constants.MetricCoverageRatio,
			Severity:   constants.SeverityCritical,
		},
		&entity.WorkflowLock{LockType: lockType, BlockedActions: actions},
	)
	require.NoError(t, err)

	b, err := svc.ExportGovernanceXLSX(ctx, propertyID)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	require.ElementsMatch(t, []string{"Alerts", "Locks", "Metrics"}, f.GetSheetList())

	alertRows, err := f.GetRows("Alerts")
	require.NoError(t, err)
	require.Len(t, alertRows, 2)
	require.Contains(t, alertRows[1], "COVERAGE_RATIO_BREACH")
	require.Contains(t, alertRows[1], "CRITICAL")

	lockRows, err := f.GetRows("Locks")
	require.NoError(t, err)
	require.Len(t, lockRows, 2)
	require.Contains(t, lockRows[1], "REFINANCE_BLOCK")
	require.Contains(t, lockRows[1], "REFINANCE, SELL")

	metricRows, err := f.GetRows("Metrics")
	require.NoError(t, err)
	require.Len(t, metricRows, 2)
	require.Contains(t, metricRows[1], "COVERAGE_RATIO")
}

func TestExportGovernanceXLSX_EmptyProperty(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewService(store.Alerts(), store.Locks(), store.Metrics(), nil)

	b, err := svc.ExportGovernanceXLSX(ctx, uuid.New())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Alerts")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
