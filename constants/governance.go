package constants

// ActionType is a business action that a workflow lock can block.
type ActionType string

const (
	ActionRefinance ActionType = "REFINANCE"
	ActionSell      ActionType = "SELL"
	ActionDispose   ActionType = "DISPOSE"
)

func ActionTypeValues() []string {
	return []string{string(ActionRefinance), string(ActionSell), string(ActionDispose)}
}

// AlertType identifies the governance rule that raised a committee alert.
type AlertType string

const (
	AlertCoverageBreach  AlertType = "COVERAGE_RATIO_BREACH"
	AlertOccupancyBreach AlertType = "OCCUPANCY_BREACH"
	AlertExpenseBreach   AlertType = "EXPENSE_RATIO_BREACH"
	AlertMetricAnomaly   AlertType = "METRIC_ANOMALY"
)

func AlertTypeValues() []string {
	return []string{
		string(AlertCoverageBreach),
		string(AlertOccupancyBreach),
		string(AlertExpenseBreach),
		string(AlertMetricAnomaly),
	}
}

// LockType names the kind of workflow lock an alert creates.
type LockType string

const (
	LockRefinanceBlock   LockType = "REFINANCE_BLOCK"
	LockSaleHold         LockType = "SALE_HOLD"
	LockDispositionBlock LockType = "DISPOSITION_BLOCK"
)

func LockTypeValues() []string {
	return []string{
		string(LockRefinanceBlock),
		string(LockSaleHold),
		string(LockDispositionBlock),
	}
}

// ResolutionDecision is the committee's verdict when resolving an alert.
type ResolutionDecision string

const (
	DecisionApproved ResolutionDecision = "APPROVED"
	DecisionRejected ResolutionDecision = "REJECTED"
)
