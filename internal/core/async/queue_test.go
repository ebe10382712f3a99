package async

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/alerting"
	"github.com/propertyops/asset-governor/internal/anomaly"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/core"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/extract"
	"github.com/propertyops/asset-governor/internal/repository"
)

type fixture struct {
	store *repository.MemoryStore
	blobs *extract.MemoryBlobStore
	queue *Queue
}

// scriptedExtractor fails the first failures calls with failWith, then
// delegates. It also records the order documents reach extraction.
type scriptedExtractor struct {
	inner    extract.Extractor
	failWith error
	failures int

	mu    sync.Mutex
	calls int
	seen  []uuid.UUID
}

func (e *scriptedExtractor) Extract(ctx context.Context, doc extract.Document) (*extract.Payload, error) {
	e.mu.Lock()
	e.calls++
	e.seen = append(e.seen, doc.DocumentID)
	fail := e.failWith != nil && e.calls <= e.failures
	e.mu.Unlock()
	if fail {
		return nil, e.failWith
	}
	return e.inner.Extract(ctx, doc)
}

func (e *scriptedExtractor) order() []uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]uuid.UUID(nil), e.seen...)
}

func newFixture(t *testing.T, extractor extract.Extractor, opts ...Option) *fixture {
	t.Helper()
	store := repository.NewMemoryStore()
	blobs := extract.NewMemoryBlobStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if extractor == nil {
		extractor = extract.NewJSONExtractor()
	}

	proc := core.NewProcessor(
		blobs,
		extractor,
		store.Metrics(),
		store.Properties(),
		anomaly.New(anomaly.Config{}),
		alerting.NewManager(store.Alerts(), log),
		log,
	)
	opts = append([]Option{
		WithWorkers(4),
		WithQueueSize(32),
		WithProcessTimeout(5 * time.Second),
		WithBackoffBase(time.Millisecond),
	}, opts...)
	q := NewQueue(store.Jobs(), proc, log, opts...)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		q.Shutdown(ctx)
	})
	return &fixture{store: store, blobs: blobs, queue: q}
}

func (f *fixture) putDoc(ref string, period string, coverage float64) {
	f.blobs.Put(ref, []byte(fmt.Sprintf(`{"period": %q, "metrics": {"coverage_ratio": %v}}`, period, coverage)))
}

func (f *fixture) awaitStatus(t *testing.T, jobID uuid.UUID, want constants.JobStatus) {
	t.Helper()
	require.Eventually(t, func() bool {
		job, err := f.store.Jobs().Get(context.Background(), jobID)
		return err == nil && job.Status == want
	}, 5*time.Second, 5*time.Millisecond, "job %s never reached %s", jobID, want)
}

func TestQueue_ProcessesDocument(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	propertyID := uuid.New()
	f.putDoc("docs/a.json", "2026-07", 1.10)

	job, err := f.queue.Enqueue(ctx, uuid.New(), propertyID, "docs/a.json")
	require.NoError(t, err)
	f.awaitStatus(t, job.ID, constants.JobStatusProcessed)

	done, err := f.store.Jobs().Get(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, 1, done.AttemptCount)
	require.NotNil(t, done.StartedAt)
	require.NotNil(t, done.CompletedAt)
	require.Nil(t, done.LastError)

	hist, err := f.store.Metrics().History(ctx, propertyID, constants.MetricCoverageRatio)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	require.Equal(t, 1.10, hist[0].Value)

	// 1.10 breaches the coverage threshold: alert plus lock exist.
	alerts, err := f.store.Alerts().ListByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, constants.SeverityCritical, alerts[0].Severity)

	locks, err := f.store.Locks().ActiveByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, locks, 1)
}

func TestQueue_PerPropertyOrdering(t *testing.T) {
	ctx := context.Background()
	rec := &scriptedExtractor{inner: extract.NewJSONExtractor()}
	f := newFixture(t, rec)
	propertyID := uuid.New()

	var want []uuid.UUID
	for i := 0; i < 10; i++ {
		ref := fmt.Sprintf("docs/%d.json", i)
		f.putDoc(ref, fmt.Sprintf("2026-%02d", i+1), 1.5)
		docID := uuid.New()
		want = append(want, docID)
		_, err := f.queue.Enqueue(ctx, docID, propertyID, ref)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		return len(rec.order()) == len(want)
	}, 5*time.Second, 5*time.Millisecond)

	// Same property, same lane: extraction order is enqueue order.
	require.Equal(t, want, rec.order())
}

func TestQueue_ExtractionErrorFailsPermanently(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.blobs.Put("docs/bad.json", []byte("%PDF-1.7 scanned garbage"))

	job, err := f.queue.Enqueue(ctx, uuid.New(), uuid.New(), "docs/bad.json")
	require.NoError(t, err)
	f.awaitStatus(t, job.ID, constants.JobStatusFailed)

	failed, err := f.store.Jobs().Get(ctx, job.ID)
	require.NoError(t, err)
	// One attempt only: content errors are not retried.
	require.Equal(t, 1, failed.AttemptCount)
	require.NotNil(t, failed.LastError)
}

func TestQueue_TransientFailureRetries(t *testing.T) {
	ctx := context.Background()
	flaky := &scriptedExtractor{
		inner:    extract.NewJSONExtractor(),
		failWith: common.NewTransientError("blob service hiccup", nil),
		failures: 2,
	}
	f := newFixture(t, flaky, WithMaxAttempts(3))
	f.putDoc("docs/a.json", "2026-07", 1.5)

	job, err := f.queue.Enqueue(ctx, uuid.New(), uuid.New(), "docs/a.json")
	require.NoError(t, err)
	f.awaitStatus(t, job.ID, constants.JobStatusProcessed)

	done, err := f.store.Jobs().Get(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, 3, done.AttemptCount)
}

func TestQueue_RetryBudgetExhausted(t *testing.T) {
	ctx := context.Background()
	alwaysDown := &scriptedExtractor{
		inner:    extract.NewJSONExtractor(),
		failWith: common.NewTransientError("blob service down", nil),
		failures: 1 << 20,
	}
	f := newFixture(t, alwaysDown, WithMaxAttempts(2))
	f.putDoc("docs/a.json", "2026-07", 1.5)

	job, err := f.queue.Enqueue(ctx, uuid.New(), uuid.New(), "docs/a.json")
	require.NoError(t, err)
	f.awaitStatus(t, job.ID, constants.JobStatusFailed)

	failed, err := f.store.Jobs().Get(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, 2, failed.AttemptCount)
	require.Contains(t, *failed.LastError, "retries exhausted")
}

func TestQueue_CancelQueuedJob(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	slow := &blockingExtractor{inner: extract.NewJSONExtractor(), release: release}
	f := newFixture(t, slow, WithWorkers(1))
	propertyID := uuid.New()
	f.putDoc("docs/a.json", "2026-07", 1.5)
	f.putDoc("docs/b.json", "2026-08", 1.5)

	first, err := f.queue.Enqueue(ctx, uuid.New(), propertyID, "docs/a.json")
	require.NoError(t, err)
	second, err := f.queue.Enqueue(ctx, uuid.New(), propertyID, "docs/b.json")
	require.NoError(t, err)

	// The worker is stuck inside the first job; the second is still QUEUED.
	canceled, err := f.queue.Cancel(ctx, second.ID)
	require.NoError(t, err)
	require.True(t, canceled)
	close(release)

	f.awaitStatus(t, first.ID, constants.JobStatusProcessed)
	f.awaitStatus(t, second.ID, constants.JobStatusCanceled)

	// Cancel after completion is a no-op.
	canceled, err = f.queue.Cancel(ctx, first.ID)
	require.NoError(t, err)
	require.False(t, canceled)
}

// blockingExtractor parks the first call until release is closed.
type blockingExtractor struct {
	inner   extract.Extractor
	release chan struct{}
	once    sync.Once
}

func (e *blockingExtractor) Extract(ctx context.Context, doc extract.Document) (*extract.Payload, error) {
	blocked := false
	e.once.Do(func() { blocked = true })
	if blocked {
		select {
		case <-e.release:
		case <-ctx.Done():
			return nil, common.NewTransientError("canceled while blocked", ctx.Err())
		}
	}
	return e.inner.Extract(ctx, doc)
}

func TestQueue_RecoverExpiredLease(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, WithVisibilityTimeout(time.Nanosecond))
	propertyID := uuid.New()
	f.putDoc("docs/a.json", "2026-07", 1.5)

	// Simulate a worker that claimed the job and died: the row sits in
	// PROCESSING with nobody holding it.
	job, err := f.store.Jobs().Create(ctx, &entity.ProcessingJob{
		DocumentID: uuid.New(),
		PropertyID: propertyID,
		BlobRef:    "docs/a.json",
	})
	require.NoError(t, err)
	_, err = f.store.Jobs().MarkProcessing(ctx, job.ID)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	n, err := f.queue.Recover(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	f.awaitStatus(t, job.ID, constants.JobStatusProcessed)

	// The lease expiry counts as an attempt; recovery added the second.
	done, err := f.store.Jobs().Get(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, 2, done.AttemptCount)
}

func TestQueue_RecoverIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	n, err := f.queue.Recover(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
