package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the process-wide instrumentation surface. A nil *Metrics is a
// valid no-op so tests and the batch CLI can skip registration entirely.
type Metrics struct {
	jobsEnqueued    prometheus.Counter
	jobsFinished    *prometheus.CounterVec
	jobRetries      prometheus.Counter
	queueDepth      *prometheus.GaugeVec
	processDuration prometheus.Histogram
	alertsRaised    *prometheus.CounterVec
	alertsEscalated prometheus.Counter
	locksExpired    prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		jobsEnqueued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "governor",
			Subsystem: "pipeline",
			Name:      "jobs_enqueued_total",
			Help:      "Processing jobs accepted into the queue.",
		}),
		jobsFinished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "governor",
			Subsystem: "pipeline",
			Name:      "jobs_finished_total",
			Help:      "Processing jobs by terminal status.",
		}, []string{"status"}),
		jobRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "governor",
			Subsystem: "pipeline",
			Name:      "job_retries_total",
			Help:      "Jobs requeued after a transient failure.",
		}),
		queueDepth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "governor",
			Subsystem: "pipeline",
			Name:      "queue_depth",
			Help:      "Jobs waiting per worker lane.",
		}, []string{"lane"}),
		processDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "governor",
			Subsystem: "pipeline",
			Name:      "process_duration_seconds",
			Help:      "Wall time spent processing one document.",
			Buckets:   prometheus.DefBuckets,
		}),
		alertsRaised: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "governor",
			Subsystem: "alerting",
			Name:      "alerts_raised_total",
			Help:      "Committee alerts created, by severity.",
		}, []string{"severity"}),
		alertsEscalated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "governor",
			Subsystem: "alerting",
			Name:      "alerts_escalated_total",
			Help:      "Pending alerts escalated in place.",
		}),
		locksExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "governor",
			Subsystem: "locking",
			Name:      "locks_expired_total",
			Help:      "Workflow locks expired by the TTL sweep.",
		}),
	}
}

func (m *Metrics) JobEnqueued() {
	if m == nil {
		return
	}
	m.jobsEnqueued.Inc()
}

func (m *Metrics) JobFinished(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.jobsFinished.WithLabelValues(status).Inc()
	m.processDuration.Observe(d.Seconds())
}

func (m *Metrics) JobRetried() {
	if m == nil {
		return
	}
	m.jobRetries.Inc()
}

func (m *Metrics) SetQueueDepth(lane string, depth int) {
	if m == nil {
		return
	}
	m.queueDepth.WithLabelValues(lane).Set(float64(depth))
}

func (m *Metrics) AlertRaised(severity string) {
	if m == nil {
		return
	}
	m.alertsRaised.WithLabelValues(severity).Inc()
}

func (m *Metrics) AlertEscalated() {
	if m == nil {
		return
	}
	m.alertsEscalated.Inc()
}

func (m *Metrics) LocksExpired(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.locksExpired.Add(float64(n))
}
