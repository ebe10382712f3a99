package alerting

import (
	"context"
	"errors"
	"log/slog"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/anomaly"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/locking"
	"github.com/propertyops/asset-governor/internal/observability"
	"github.com/propertyops/asset-governor/internal/repository"
)

// MergePolicy decides what happens when a violation arrives for a signature
// that already has a pending alert.
type MergePolicy string

const (
	// MergeUpgradeOnly touches the pending alert only when the new violation
	// is strictly worse. Repeat violations at the same severity are absorbed.
	MergeUpgradeOnly MergePolicy = "UPGRADE_ONLY"
	// MergeAlways refreshes the snapshot on every violation and keeps the
	// worse of the two severities.
	MergeAlways MergePolicy = "ALWAYS"
)

// anomalyCriticalConfidence promotes a pure statistical anomaly from WARNING
// to CRITICAL once the detector is this confident.
const anomalyCriticalConfidence = 0.9

// Manager turns metric violations into committee alerts. Exactly one pending
// alert exists per (property, metric_type) signature. The per-property mutex
// serializes the check-then-create within this process; across processes the
// store's unique constraint on pending signatures backstops it, and a losing
// insert is folded into the winner's alert as a merge.
type Manager struct {
	catalog *Catalog
	alerts  repository.AlertRepository
	policy  MergePolicy
	keys    *common.KeyMutex
	obs     *observability.Metrics
	log     *slog.Logger
}

type Option func(*Manager)

func WithMergePolicy(p MergePolicy) Option {
	return func(m *Manager) { m.policy = p }
}

func WithCatalog(c *Catalog) Option {
	return func(m *Manager) { m.catalog = c }
}

func WithObservability(obs *observability.Metrics) Option {
	return func(m *Manager) { m.obs = obs }
}

func NewManager(alerts repository.AlertRepository, log *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		catalog: DefaultCatalog(),
		alerts:  alerts,
		policy:  MergeUpgradeOnly,
		keys:    common.NewKeyMutex(),
		log:     log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EvaluateMetric applies the static threshold table and the anomaly verdict
// to one metric. Severity is the worse of the two signals. Returns the alert
// raised or escalated, or nil when the metric is clean.
func (m *Manager) EvaluateMetric(ctx context.Context, metric *entity.ExtractedMetric, verdict anomaly.Result) (*entity.CommitteeAlert, error) {
	rule, staticHit := m.catalog.Evaluate(metric.MetricType, metric.Value)
	anomalyHit := verdict.Evaluated && verdict.IsAnomaly
	if !staticHit && !anomalyHit {
		return nil, nil
	}

	severity := constants.SeverityWarning
	alertType := constants.AlertMetricAnomaly
	snapshot := entity.MetricSnapshot{
		MetricType: metric.MetricType,
		Value:      metric.Value,
		Period:     metric.Period,
	}
	if anomalyHit {
		snapshot.ZScore = verdict.ZScore
		snapshot.CUSUM = verdict.CUSUM()
		snapshot.Confidence = verdict.Confidence
		snapshot.Reason = "statistical anomaly"
		if verdict.Confidence >= anomalyCriticalConfidence {
			severity = constants.SeverityCritical
		}
	}
	if staticHit {
		alertType = rule.AlertType
		snapshot.Threshold = rule.Threshold
		snapshot.Reason = rule.Reason(metric.Value)
		severity = constants.MaxSeverity(severity, rule.Severity)
	}

	m.keys.Lock(metric.PropertyID)
	defer m.keys.Unlock(metric.PropertyID)

	existing, err := m.alerts.PendingBySignature(ctx, metric.PropertyID, metric.MetricType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return m.merge(ctx, existing, severity, snapshot)
	}

	lockType, actions := locking.SpecFor(alertType)
	alert := &entity.CommitteeAlert{
		PropertyID:     metric.PropertyID,
		AlertType:      alertType,
		MetricType:     metric.MetricType,
		Severity:       severity,
		MetricSnapshot: snapshot.Encode(),
	}
	lock := &entity.WorkflowLock{
		LockType:       lockType,
		BlockedActions: actions,
	}
	created, _, err := m.alerts.CreateWithLock(ctx, alert, lock)
	if err != nil {
		if errors.Is(err, common.ErrDuplicatePending) {
			// Another writer created this signature's pending alert between
			// our read and our insert. Merge into it.
			winner, gerr := m.alerts.PendingBySignature(ctx, metric.PropertyID, metric.MetricType)
			if gerr != nil {
				return nil, gerr
			}
			if winner != nil {
				return m.merge(ctx, winner, severity, snapshot)
			}
		}
		return nil, err
	}
	return created, nil
}

// merge folds a repeat violation into the pending alert for its signature.
// The alert id and created_at never change.
func (m *Manager) merge(ctx context.Context, existing *entity.CommitteeAlert, severity constants.Severity, snapshot entity.MetricSnapshot) (*entity.CommitteeAlert, error) {
	if m.policy == MergeUpgradeOnly && severity.Rank() <= existing.Severity.Rank() {
		m.log.Debug("violation absorbed by pending alert",
			"alert_id", existing.ID,
			"property_id", existing.PropertyID,
			"metric_type", existing.MetricType,
			"severity", severity,
		)
		return existing, nil
	}
	merged := constants.MaxSeverity(existing.Severity, severity)
	if err := m.alerts.UpdatePending(ctx, existing.ID, merged, snapshot.Encode()); err != nil {
		return nil, err
	}
	if merged.Rank() > existing.Severity.Rank() {
		m.obs.AlertEscalated()
	}
	existing.Severity = merged
	existing.MetricSnapshot = snapshot.Encode()
	return existing, nil
}
