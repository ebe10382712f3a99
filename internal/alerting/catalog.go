package alerting

import (
	"fmt"

	"github.com/propertyops/asset-governor/constants"
)

// ThresholdRule flags a metric value that crosses a fixed boundary. Direction
// says which side of the threshold is a breach.
type ThresholdRule struct {
	MetricType constants.MetricType
	// Below breaches when value < Threshold; otherwise value > Threshold.
	Below     bool
	Threshold float64
	Severity  constants.Severity
	AlertType constants.AlertType
}

// Matches reports whether value breaches the rule.
func (r ThresholdRule) Matches(value float64) bool {
	if r.Below {
		return value < r.Threshold
	}
	return value > r.Threshold
}

// Reason renders the breach for a metric snapshot.
func (r ThresholdRule) Reason(value float64) string {
	op := ">"
	if r.Below {
		op = "<"
	}
	return fmt.Sprintf("%s %.4f %s %.4f", r.MetricType, value, op, r.Threshold)
}

// Catalog is the fixed table of governance threshold rules.
type Catalog struct {
	rules []ThresholdRule
}

// DefaultCatalog returns the committee-approved threshold table.
func DefaultCatalog() *Catalog {
	return NewCatalog([]ThresholdRule{
		{
			MetricType: constants.MetricCoverageRatio,
			Below:      true,
			Threshold:  1.25,
			Severity:   constants.SeverityCritical,
			AlertType:  constants.AlertCoverageBreach,
		},
		{
			MetricType: constants.MetricOccupancyRate,
			Below:      true,
			Threshold:  0.80,
			Severity:   constants.SeverityCritical,
			AlertType:  constants.AlertOccupancyBreach,
		},
		{
			MetricType: constants.MetricOccupancyRate,
			Below:      true,
			Threshold:  0.85,
			Severity:   constants.SeverityWarning,
			AlertType:  constants.AlertOccupancyBreach,
		},
		{
			MetricType: constants.MetricExpenseRatio,
			Below:      false,
			Threshold:  0.65,
			Severity:   constants.SeverityWarning,
			AlertType:  constants.AlertExpenseBreach,
		},
	})
}

func NewCatalog(rules []ThresholdRule) *Catalog {
	return &Catalog{rules: rules}
}

// Evaluate returns the most severe matching rule for the metric value,
// or ok=false when no rule breaches.
func (c *Catalog) Evaluate(metricType constants.MetricType, value float64) (ThresholdRule, bool) {
	var best ThresholdRule
	found := false
	for _, r := range c.rules {
		if r.MetricType != metricType || !r.Matches(value) {
			continue
		}
		if !found || r.Severity.Rank() > best.Severity.Rank() {
			best = r
			found = true
		}
	}
	return best, found
}
