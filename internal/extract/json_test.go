package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/common"
)

func TestJSONExtractor_Extract(t *testing.T) {
	ctx := context.Background()
	e := NewJSONExtractor()

	t.Run("canonical payload", func(t *testing.T) {
		doc := Document{Content: []byte(`{
			"period": "2026-07",
			"metrics": {
				"COVERAGE_RATIO": 1.18,
				"OCCUPANCY_RATE": 0.91,
				"NET_OPERATING_INCOME": 182000.50
			},
			"confidence": 0.97
		}`)}

		p, err := e.Extract(ctx, doc)
		require.NoError(t, err)
		require.Equal(t, "2026-07", p.Period)
		require.Equal(t, 0.97, p.Confidence)
		require.Len(t, p.Metrics, 3)
		require.Equal(t, 1.18, p.Metrics[constants.MetricCoverageRatio])
		require.Empty(t, p.Warnings)
	})

	t.Run("synonyms are canonicalized", func(t *testing.T) {
		doc := Document{Content: []byte(`{
			"period": "2026-07",
			"metrics": {"dscr": 1.31, "noi": 90000, "rental revenue": 120000}
		}`)}

		p, err := e.Extract(ctx, doc)
		require.NoError(t, err)
		require.Equal(t, 1.31, p.Metrics[constants.MetricCoverageRatio])
		require.Equal(t, 90000.0, p.Metrics[constants.MetricNetOperatingIncome])
		require.Equal(t, 120000.0, p.Metrics[constants.MetricRentalIncome])
	})

	t.Run("unknown metrics dropped with warning", func(t *testing.T) {
		doc := Document{Content: []byte(`{
			"period": "2026-07",
			"metrics": {"occupancy": 0.88, "vibes": 11}
		}`)}

		p, err := e.Extract(ctx, doc)
		require.NoError(t, err)
		require.Len(t, p.Metrics, 1)
		require.Len(t, p.Warnings, 1)
		require.Contains(t, p.Warnings[0], "vibes")
	})

	t.Run("content failures are extraction errors", func(t *testing.T) {
		cases := map[string][]byte{
			"empty document":     nil,
			"not json":           []byte("%PDF-1.7 garbage"),
			"missing period":     []byte(`{"metrics": {"dscr": 1.1}}`),
			"bad period format":  []byte(`{"period": "July 2026", "metrics": {"dscr": 1.1}}`),
			"empty metrics":      []byte(`{"period": "2026-07", "metrics": {}}`),
			"non-numeric metric": []byte(`{"period": "2026-07", "metrics": {"dscr": "high"}}`),
			"only unknown keys":  []byte(`{"period": "2026-07", "metrics": {"vibes": 11}}`),
		}
		for name, content := range cases {
			_, err := e.Extract(ctx, Document{Content: content})
			require.ErrorIs(t, err, common.ErrExtraction, name)
			require.NotErrorIs(t, err, common.ErrTransientInfra, name)
		}
	})
}

func TestMemoryBlobStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBlobStore()
	store.Put("docs/p1.json", []byte(`{"period":"2026-07"}`))

	b, err := store.Fetch(ctx, "docs/p1.json")
	require.NoError(t, err)
	require.JSONEq(t, `{"period":"2026-07"}`, string(b))

	_, err = store.Fetch(ctx, "docs/missing.json")
	require.ErrorIs(t, err, common.ErrExtraction)
}

func TestFSBlobStore_RejectsEscapingRefs(t *testing.T) {
	ctx := context.Background()
	store := NewFSBlobStore(t.TempDir())

	_, err := store.Fetch(ctx, "../outside.json")
	require.ErrorIs(t, err, common.ErrExtraction)

	_, err = store.Fetch(ctx, "/etc/passwd")
	require.ErrorIs(t, err, common.ErrExtraction)
}
