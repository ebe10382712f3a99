package constants

import "strings"

// MetricType identifies a quantitative metric extracted from a financial document.
type MetricType string

const (
	MetricCoverageRatio      MetricType = "COVERAGE_RATIO"       // DSCR-style: NOI / debt service
	MetricOccupancyRate      MetricType = "OCCUPANCY_RATE"       // 0..1
	MetricExpenseRatio       MetricType = "EXPENSE_RATIO"        // opex / effective gross income
	MetricNetOperatingIncome MetricType = "NET_OPERATING_INCOME" // absolute, per period
	MetricRentalIncome       MetricType = "RENTAL_INCOME"        // absolute, per period
)

var allMetricTypes = []MetricType{
	MetricCoverageRatio,
	MetricOccupancyRate,
	MetricExpenseRatio,
	MetricNetOperatingIncome,
	MetricRentalIncome,
}

func MetricTypeValues() []string {
	result := make([]string, len(allMetricTypes))
	for i, m := range allMetricTypes {
		result[i] = string(m)
	}
	return result
}

// CanonicalMetricType maps loosely-spelled extractor keys onto stable metric types.
func CanonicalMetricType(input string) (MetricType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	synonyms := map[string]MetricType{
		"DSCR":           MetricCoverageRatio,
		"DEBT_COVERAGE":  MetricCoverageRatio,
		"OCCUPANCY":      MetricOccupancyRate,
		"NOI":            MetricNetOperatingIncome,
		"OPEX_RATIO":     MetricExpenseRatio,
		"GROSS_RENT":     MetricRentalIncome,
		"RENTAL_REVENUE": MetricRentalIncome,
	}
	if m, ok := synonyms[normalized]; ok {
		return m, true
	}
	for _, m := range allMetricTypes {
		if normalized == string(m) {
			return m, true
		}
	}
	return "", false
}

// PropertyClass groups properties by volatility profile. Detector thresholds
// are scaled per class: value-add assets swing harder than stabilized ones.
type PropertyClass string

const (
	ClassStabilized    PropertyClass = "STABILIZED"
	ClassValueAdd      PropertyClass = "VALUE_ADD"
	ClassOpportunistic PropertyClass = "OPPORTUNISTIC"
)

func PropertyClassValues() []string {
	return []string{
		string(ClassStabilized),
		string(ClassValueAdd),
		string(ClassOpportunistic),
	}
}
