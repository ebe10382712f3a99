package async

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/core"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/observability"
	"github.com/propertyops/asset-governor/internal/repository"
)

// Queue dispatches processing jobs to a fixed pool of worker lanes. A
// property always hashes to the same lane, so jobs for one property run
// serially in enqueue order while distinct properties run in parallel.
//
// The job table is the durable source of truth: every dispatch races through
// a compare-and-swap on QUEUED, so a job reaches a worker at most once no
// matter how many times it lands in a lane.
type Queue struct {
	jobs    repository.JobRepository
	proc    *core.Processor
	logger  *slog.Logger
	metrics *observability.Metrics

	workers           int
	queueSize         int
	processTimeout    time.Duration
	visibilityTimeout time.Duration
	maxAttempts       int
	backoffBase       time.Duration

	lanes []chan uuid.UUID
	wg    sync.WaitGroup
	once  sync.Once

	done    chan struct{}
	retryWG sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.queueSize = n
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.processTimeout = d
		}
	}
}
func WithVisibilityTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.visibilityTimeout = d
		}
	}
}
func WithMaxAttempts(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}
func WithBackoffBase(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.backoffBase = d
		}
	}
}
func WithMetrics(m *observability.Metrics) Option {
	return func(q *Queue) { q.metrics = m }
}

func NewQueue(jobs repository.JobRepository, proc *core.Processor, logger *slog.Logger, opts ...Option) *Queue {
	q := &Queue{
		jobs:              jobs,
		proc:              proc,
		logger:            logger,
		workers:           4,
		queueSize:         256,
		processTimeout:    3 * time.Minute,
		visibilityTimeout: 5 * time.Minute,
		maxAttempts:       3,
		backoffBase:       2 * time.Second,
		done:              make(chan struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		q.lanes = make([]chan uuid.UUID, q.workers)
		for i := range q.lanes {
			q.lanes[i] = make(chan uuid.UUID, q.queueSize)
		}
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(laneID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "lane", laneID)
				for jobID := range q.lanes[laneID] {
					q.runJob(laneID, jobID)
					q.metrics.SetQueueDepth(fmt.Sprint(laneID), len(q.lanes[laneID]))
				}
				q.logger.Info("worker stopped", "lane", laneID)
			}(i)
		}
	})
}

func (q *Queue) laneFor(propertyID uuid.UUID) int {
	h := fnv.New32a()
	h.Write(propertyID[:])
	return int(h.Sum32() % uint32(q.workers))
}

// Enqueue records a job for the document and hands it to the property's lane.
// Blocks under backpressure once the lane is full.
func (q *Queue) Enqueue(ctx context.Context, documentID, propertyID uuid.UUID, blobRef string) (*entity.ProcessingJob, error) {
	job, err := q.jobs.Create(ctx, &entity.ProcessingJob{
		DocumentID: documentID,
		PropertyID: propertyID,
		BlobRef:    blobRef,
	})
	if err != nil {
		return nil, common.NewTransientError("job create failed", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		// The row survives; the next Recover call re-dispatches it.
		return job, common.NewTransientError("queue is shutting down", nil)
	}
	if err := q.dispatch(job.PropertyID, job.ID); err != nil {
		return job, err
	}
	q.metrics.JobEnqueued()
	return job, nil
}

// dispatch requires q.mu held, which keeps the lanes open for the duration
// of a blocking send.
func (q *Queue) dispatch(propertyID, jobID uuid.UUID) error {
	lane := q.lanes[q.laneFor(propertyID)]
	select {
	case lane <- jobID:
	default:
		q.logger.Warn("lane full, applying backpressure", "job_id", jobID, "lane", q.laneFor(propertyID))
		select {
		case lane <- jobID:
		case <-q.done:
			return common.NewTransientError("queue is shutting down", nil)
		}
	}
	return nil
}

// Cancel withdraws a job that has not reached a worker yet. Returns false
// when the job already left the queue.
func (q *Queue) Cancel(ctx context.Context, jobID uuid.UUID) (bool, error) {
	return q.jobs.Cancel(ctx, jobID)
}

func (q *Queue) runJob(laneID int, jobID uuid.UUID) {
	job, err := q.jobs.MarkProcessing(context.Background(), jobID)
	if err != nil {
		if errors.Is(err, common.ErrInvariantViolation) {
			// Canceled, or a duplicate dispatch lost the CAS.
			q.logger.Debug("job skipped, no longer queued", "job_id", jobID, "lane", laneID)
			return
		}
		q.logger.Error("job claim failed", "job_id", jobID, "lane", laneID, "error", err)
		return
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), q.processTimeout)
	res, err := q.proc.Process(ctx, job)
	cancel()

	switch {
	case err == nil:
		if merr := q.jobs.MarkProcessed(context.Background(), jobID); merr != nil {
			q.logger.Error("job finish-mark failed", "job_id", jobID, "error", merr)
			return
		}
		q.metrics.JobFinished(string(constants.JobStatusProcessed), time.Since(start))
		for _, alert := range res.AlertsRaised {
			q.metrics.AlertRaised(string(alert.Severity))
		}

	case errors.Is(err, common.ErrExtraction):
		// The document itself is bad. Retrying cannot fix content.
		q.logger.Warn("extraction failed, job failed permanently",
			"job_id", jobID,
			"document_id", job.DocumentID,
			"error", err,
		)
		q.failJob(jobID, err, start)

	default:
		q.retryOrFail(laneID, job, err, start)
	}
}

func (q *Queue) retryOrFail(laneID int, job *entity.ProcessingJob, cause error, start time.Time) {
	if job.AttemptCount >= q.maxAttempts {
		q.logger.Error("job exhausted retry budget",
			"job_id", job.ID,
			"attempts", job.AttemptCount,
			"error", cause,
		)
		q.failJob(job.ID, fmt.Errorf("retries exhausted: %w", cause), start)
		return
	}

	if err := q.jobs.Requeue(context.Background(), job.ID, cause.Error()); err != nil {
		q.logger.Error("job requeue failed", "job_id", job.ID, "error", err)
		return
	}
	delay := q.backoffBase << (job.AttemptCount - 1)
	q.logger.Warn("transient failure, retrying",
		"job_id", job.ID,
		"lane", laneID,
		"attempt", job.AttemptCount,
		"delay", delay,
		"error", cause,
	)
	q.metrics.JobRetried()

	q.retryWG.Add(1)
	go func() {
		defer q.retryWG.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-q.done:
			return
		}
		q.mu.Lock()
		defer q.mu.Unlock()
		if q.closed {
			return
		}
		if err := q.dispatch(job.PropertyID, job.ID); err != nil {
			q.logger.Warn("retry dispatch failed", "job_id", job.ID, "error", err)
		}
	}()
}

func (q *Queue) failJob(jobID uuid.UUID, cause error, start time.Time) {
	if err := q.jobs.MarkFailed(context.Background(), jobID, cause.Error()); err != nil {
		q.logger.Error("job fail-mark failed", "job_id", jobID, "error", err)
		return
	}
	q.metrics.JobFinished(string(constants.JobStatusFailed), time.Since(start))
}

// Recover requeues jobs whose lease outlived the visibility timeout and
// re-dispatches everything QUEUED. Run at startup and on a timer; duplicate
// dispatches are resolved by the claim CAS, so overlapping sweeps are safe.
func (q *Queue) Recover(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-q.visibilityTimeout)
	stale, err := q.jobs.StaleProcessing(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	for _, job := range stale {
		if err := q.jobs.Requeue(ctx, job.ID, "lease expired"); err != nil {
			return 0, err
		}
		q.logger.Warn("job lease expired, requeued", "job_id", job.ID, "started_at", job.StartedAt)
	}

	queued, err := q.jobs.ListQueued(ctx)
	if err != nil {
		return 0, err
	}
	dispatched := 0
	for _, job := range queued {
		q.mu.Lock()
		if q.closed {
			q.mu.Unlock()
			break
		}
		err := q.dispatch(job.PropertyID, job.ID)
		q.mu.Unlock()
		if err != nil {
			return dispatched, err
		}
		dispatched++
	}
	if dispatched > 0 {
		q.logger.Info("recovery dispatch complete", "queued", dispatched, "expired_leases", len(stale))
	}
	return dispatched, nil
}

// Shutdown stops intake, lets in-flight work drain, and waits up to the
// context deadline. Jobs still queued in the table are picked up by the next
// process's Recover.
func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.done)
	q.mu.Unlock()

	// Pending retry timers drop their jobs once done is closed; wait for
	// them before closing the lanes under them.
	q.retryWG.Wait()
	for _, lane := range q.lanes {
		close(lane)
	}

	drained := make(chan struct{})
	go func() { defer close(drained); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-drained:
		q.logger.Info("queue drained, shutdown complete")
	}
}
