package anomaly

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/entity"
)

func points(values ...float64) []entity.MetricPoint {
	out := make([]entity.MetricPoint, len(values))
	for i, v := range values {
		out[i] = entity.MetricPoint{Period: fmt.Sprintf("2025-%02d", i+1), Value: v}
	}
	return out
}

func TestEvaluate_SpikeFlagsOnlyFinalValue(t *testing.T) {
	d := New(Config{Window: 5, MinSamples: 5, ZThreshold: 2.0})
	series := points(100, 102, 101, 99, 103, 250)

	results := d.EvaluateSeries(constants.MetricRentalIncome, series, constants.ClassStabilized)
	require.Len(t, results, 6)
	for i := 0; i < 5; i++ {
		require.False(t, results[i].IsAnomaly, "value %v at index %d must not flag", series[i].Value, i)
	}

	last := results[5]
	require.True(t, last.Evaluated)
	require.True(t, last.IsAnomaly)
	require.Greater(t, last.ZScore, 2.0)
	require.Equal(t, 1.0, last.Confidence)
}

func TestEvaluate_FlatSeries(t *testing.T) {
	d := New(Config{Window: 5, MinSamples: 5})
	res := d.Evaluate(constants.MetricOccupancyRate, points(0.9, 0.9, 0.9, 0.9, 0.9, 0.9), constants.ClassStabilized)

	require.True(t, res.Evaluated)
	require.False(t, res.IsAnomaly)
	require.Equal(t, 0.0, res.ZScore)
	require.Equal(t, 0.0, res.CUSUM())
}

func TestEvaluate_InsufficientHistory(t *testing.T) {
	d := New(Config{})

	for n := 0; n <= DefaultMinSamples; n++ {
		series := points(100, 900, 100, 900, 100)[:n]
		res := d.Evaluate(constants.MetricRentalIncome, series, constants.ClassStabilized)
		require.False(t, res.Evaluated, "series of %d points must yield no verdict", n)
		require.False(t, res.IsAnomaly)
	}

	// One more point and the baseline reaches the floor: a verdict appears.
	res := d.Evaluate(constants.MetricRentalIncome, points(100, 102, 101), constants.ClassStabilized)
	require.True(t, res.Evaluated)
}

func TestEvaluate_CUSUMCatchesDriftBelowZThreshold(t *testing.T) {
	// The threshold is set high enough that no single point z-flags; the
	// sustained upward drift trips the positive accumulator instead.
	d := New(Config{Window: 8, MinSamples: 4, ZThreshold: 3.0, Drift: 0.25, Decision: 1.5})
	series := points(10, 10.2, 9.8, 10, 10.1, 9.9, 10.4, 10.5, 10.6)

	res := d.Evaluate(constants.MetricExpenseRatio, series, constants.ClassStabilized)
	require.True(t, res.Evaluated)
	require.True(t, res.IsAnomaly)
	require.Less(t, math.Abs(res.ZScore), 3.0)
	require.Greater(t, res.CUSUM(), 1.5)
	require.Greater(t, res.CUSUMPos, res.CUSUMNeg)
}

func TestEvaluate_ClassMultipliers(t *testing.T) {
	d := New(Config{Window: 5, MinSamples: 5, ZThreshold: 2.0})
	// z for the final point is about 2.26 against the stabilized threshold
	// of 2.0 and the opportunistic threshold of 3.0.
	series := points(100, 102, 101, 99, 103, 104.2)

	stabilized := d.Evaluate(constants.MetricRentalIncome, series, constants.ClassStabilized)
	require.True(t, stabilized.IsAnomaly)

	opportunistic := d.Evaluate(constants.MetricRentalIncome, series, constants.ClassOpportunistic)
	require.False(t, opportunistic.IsAnomaly)
	require.InDelta(t, stabilized.ZScore, opportunistic.ZScore, 1e-9)
}

func TestEvaluate_NegativeSpike(t *testing.T) {
	d := New(Config{Window: 5, MinSamples: 5})
	series := points(100, 102, 101, 99, 103, 20)

	res := d.Evaluate(constants.MetricNetOperatingIncome, series, constants.ClassStabilized)
	require.True(t, res.IsAnomaly)
	require.Less(t, res.ZScore, -2.0)
}

func TestEvaluate_WindowSlidesPastOldRegime(t *testing.T) {
	// Early chaos falls out of the trailing window; a value ordinary for
	// the recent regime must not flag.
	d := New(Config{Window: 4, MinSamples: 4})
	series := points(500, 10, 980, 200, 201, 199, 202, 200)

	res := d.Evaluate(constants.MetricRentalIncome, series, constants.ClassStabilized)
	require.True(t, res.Evaluated)
	require.False(t, res.IsAnomaly)
}

func TestNew_Defaults(t *testing.T) {
	d := New(Config{})
	require.Equal(t, DefaultWindow, d.cfg.Window)
	require.Equal(t, DefaultMinSamples, d.cfg.MinSamples)
	require.Equal(t, DefaultZThreshold, d.cfg.ZThreshold)
	require.Equal(t, DefaultDrift, d.cfg.Drift)
	require.Equal(t, DefaultDecision, d.cfg.Decision)

	// MinSamples never undercuts the floor of 2 or exceeds the window.
	d = New(Config{Window: 3, MinSamples: 1})
	require.Equal(t, 2, d.cfg.MinSamples)
	d = New(Config{Window: 3, MinSamples: 10})
	require.Equal(t, 3, d.cfg.MinSamples)
}
