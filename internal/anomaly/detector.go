package anomaly

import (
	"math"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/entity"
)

// Config tunes the detector. Zero values fall back to defaults in New.
type Config struct {
	// Window is the trailing number of periods the baseline is computed over.
	Window int
	// MinSamples is the baseline size required for a verdict. Two is the
	// absolute floor and the default; operators with noisy series raise it
	// to keep early history from producing verdicts. Below MinSamples the
	// detector skips rather than judge against a baseline too thin to mean
	// anything.
	MinSamples int
	// ZThreshold flags a point when |z| meets or exceeds it.
	ZThreshold float64
	// Drift is the CUSUM slack k, in standard deviations.
	Drift float64
	// Decision is the CUSUM decision threshold h, in standard deviations.
	Decision float64
	// ClassMultipliers scale ZThreshold and Decision per property class.
	// More volatile classes tolerate larger swings before flagging.
	ClassMultipliers map[constants.PropertyClass]float64
}

const (
	DefaultWindow     = 12
	DefaultMinSamples = 2
	DefaultZThreshold = 2.0
	DefaultDrift      = 0.5
	DefaultDecision   = 5.0
)

func defaultMultipliers() map[constants.PropertyClass]float64 {
	return map[constants.PropertyClass]float64{
		constants.ClassStabilized:    1.0,
		constants.ClassValueAdd:      1.25,
		constants.ClassOpportunistic: 1.5,
	}
}

// Result is the verdict for the newest point of one metric series.
type Result struct {
	MetricType constants.MetricType
	// Evaluated is false when the series was too short for a verdict.
	// An unevaluated point is never an anomaly.
	Evaluated  bool
	IsAnomaly  bool
	ZScore     float64
	CUSUMPos   float64
	CUSUMNeg   float64
	Confidence float64
}

// CUSUM returns the larger accumulator, the one a breach would come from.
func (r Result) CUSUM() float64 {
	return math.Max(r.CUSUMPos, r.CUSUMNeg)
}

// Detector evaluates metric series statelessly: the caller supplies the
// history window on every call and the detector performs no I/O.
type Detector struct {
	cfg Config
}

func New(cfg Config) *Detector {
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.MinSamples <= 0 {
		cfg.MinSamples = DefaultMinSamples
	}
	if cfg.MinSamples < 2 {
		cfg.MinSamples = 2
	}
	if cfg.MinSamples > cfg.Window {
		cfg.MinSamples = cfg.Window
	}
	if cfg.ZThreshold <= 0 {
		cfg.ZThreshold = DefaultZThreshold
	}
	if cfg.Drift <= 0 {
		cfg.Drift = DefaultDrift
	}
	if cfg.Decision <= 0 {
		cfg.Decision = DefaultDecision
	}
	if cfg.ClassMultipliers == nil {
		cfg.ClassMultipliers = defaultMultipliers()
	}
	return &Detector{cfg: cfg}
}

// Evaluate judges the final point of series against the trailing window that
// precedes it. The series must be ordered by period ascending.
//
// Policy for degenerate inputs: fewer than MinSamples baseline points yields
// no verdict, and a flat baseline (zero variance) yields z=0 rather than a
// divide-by-zero or a false anomaly.
func (d *Detector) Evaluate(metricType constants.MetricType, series []entity.MetricPoint, class constants.PropertyClass) Result {
	res := Result{MetricType: metricType}
	if len(series) < d.cfg.MinSamples+1 {
		// Current point plus at least MinSamples baseline points.
		return res
	}

	mult := d.cfg.ClassMultipliers[class]
	if mult <= 0 {
		mult = 1.0
	}
	zLimit := d.cfg.ZThreshold * mult
	hLimit := d.cfg.Decision * mult

	current := series[len(series)-1].Value
	baseline := series[:len(series)-1]
	if len(baseline) > d.cfg.Window {
		baseline = baseline[len(baseline)-d.cfg.Window:]
	}

	mean, std := meanStd(baseline)
	res.Evaluated = true

	if std > 0 {
		res.ZScore = (current - mean) / std
	}
	zAnomaly := math.Abs(res.ZScore) >= zLimit

	// CUSUM over the window plus the current point, in sigma units. A trip
	// inside the baseline resets that accumulator (those points were judged
	// when they were current); only a trip on the newest point flags it.
	cusumAnomaly := false
	if std > 0 {
		var sPos, sNeg float64
		for _, p := range baseline {
			dev := (p.Value - mean) / std
			sPos = math.Max(0, sPos+dev-d.cfg.Drift)
			sNeg = math.Max(0, sNeg+(-dev)-d.cfg.Drift)
			if sPos > hLimit {
				sPos = 0
			}
			if sNeg > hLimit {
				sNeg = 0
			}
		}
		dev := (current - mean) / std
		sPos = math.Max(0, sPos+dev-d.cfg.Drift)
		sNeg = math.Max(0, sNeg+(-dev)-d.cfg.Drift)
		res.CUSUMPos, res.CUSUMNeg = sPos, sNeg
		cusumAnomaly = sPos > hLimit || sNeg > hLimit
	}

	res.IsAnomaly = zAnomaly || cusumAnomaly
	res.Confidence = confidence(math.Abs(res.ZScore), zLimit, res.CUSUM(), hLimit)
	return res
}

// EvaluateSeries walks the series point by point, evaluating each against its
// own prefix. Used by the nightly batch to re-judge recent history.
func (d *Detector) EvaluateSeries(metricType constants.MetricType, series []entity.MetricPoint, class constants.PropertyClass) []Result {
	out := make([]Result, len(series))
	for i := range series {
		out[i] = d.Evaluate(metricType, series[:i+1], class)
	}
	return out
}

func meanStd(points []entity.MetricPoint) (float64, float64) {
	if len(points) == 0 {
		return 0, 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	mean := sum / float64(len(points))
	var sq float64
	for _, p := range points {
		d := p.Value - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(points)))
}

// confidence maps threshold ratios onto [0,1]: 0.5 right at a threshold,
// saturating at twice the threshold.
func confidence(absZ, zLimit, cusum, hLimit float64) float64 {
	zRatio := 0.0
	if zLimit > 0 {
		zRatio = absZ / zLimit
	}
	hRatio := 0.0
	if hLimit > 0 {
		hRatio = cusum / hLimit
	}
	c := math.Max(zRatio, hRatio) / 2
	return math.Min(1, c)
}
