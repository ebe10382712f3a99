package repository

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/entity"
)

// MemoryStore is an in-memory implementation of every repository interface,
// exposed as per-entity views over one shared mutex. It backs the batch CLI's
// -inmem mode and the test suite. Method semantics mirror the ent-backed
// implementations row for row.
type MemoryStore struct {
	mu         sync.Mutex
	jobs       map[uuid.UUID]*entity.ProcessingJob
	jobOrder   []uuid.UUID
	metrics    []*entity.ExtractedMetric
	alerts     map[uuid.UUID]*entity.CommitteeAlert
	locks      map[uuid.UUID]*entity.WorkflowLock
	properties map[uuid.UUID]*entity.Property
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs:       make(map[uuid.UUID]*entity.ProcessingJob),
		alerts:     make(map[uuid.UUID]*entity.CommitteeAlert),
		locks:      make(map[uuid.UUID]*entity.WorkflowLock),
		properties: make(map[uuid.UUID]*entity.Property),
	}
}

func (s *MemoryStore) Jobs() JobRepository            { return memJobs{s} }
func (s *MemoryStore) Metrics() MetricRepository      { return memMetrics{s} }
func (s *MemoryStore) Alerts() AlertRepository        { return memAlerts{s} }
func (s *MemoryStore) Locks() LockRepository          { return memLocks{s} }
func (s *MemoryStore) Properties() PropertyRepository { return memProperties{s} }

type memJobs struct{ s *MemoryStore }
type memMetrics struct{ s *MemoryStore }
type memAlerts struct{ s *MemoryStore }
type memLocks struct{ s *MemoryStore }
type memProperties struct{ s *MemoryStore }

var (
	_ JobRepository      = memJobs{}
	_ MetricRepository   = memMetrics{}
	_ AlertRepository    = memAlerts{}
	_ LockRepository     = memLocks{}
	_ PropertyRepository = memProperties{}
)

// --- JobRepository ---

func (v memJobs) Create(_ context.Context, job *entity.ProcessingJob) (*entity.ProcessingJob, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row := &entity.ProcessingJob{
		ID:         uuid.New(),
		DocumentID: job.DocumentID,
		PropertyID: job.PropertyID,
		BlobRef:    job.BlobRef,
		Status:     constants.JobStatusQueued,
		EnqueuedAt: time.Now().UTC(),
	}
	s.jobs[row.ID] = row
	s.jobOrder = append(s.jobOrder, row.ID)
	return copyJob(row), nil
}

func (v memJobs) Get(_ context.Context, id uuid.UUID) (*entity.ProcessingJob, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copyJob(row), nil
}

func (v memJobs) LatestByDocument(_ context.Context, documentID uuid.UUID) (*entity.ProcessingJob, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.jobOrder) - 1; i >= 0; i-- {
		row := s.jobs[s.jobOrder[i]]
		if row.DocumentID == documentID {
			return copyJob(row), nil
		}
	}
	return nil, common.ErrNotFound
}

func (v memJobs) MarkProcessing(_ context.Context, id uuid.UUID) (*entity.ProcessingJob, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if row.Status != constants.JobStatusQueued {
		return nil, common.NewInvariantViolation("job is not queued")
	}
	now := time.Now().UTC()
	row.Status = constants.JobStatusProcessing
	row.StartedAt = &now
	row.AttemptCount++
	return copyJob(row), nil
}

func (v memJobs) MarkProcessed(_ context.Context, id uuid.UUID) error {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	now := time.Now().UTC()
	row.Status = constants.JobStatusProcessed
	row.CompletedAt = &now
	row.LastError = nil
	return nil
}

func (v memJobs) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	now := time.Now().UTC()
	row.Status = constants.JobStatusFailed
	row.CompletedAt = &now
	row.LastError = &message
	return nil
}

func (v memJobs) Requeue(_ context.Context, id uuid.UUID, message string) error {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	row.Status = constants.JobStatusQueued
	row.LastError = &message
	return nil
}

func (v memJobs) Cancel(_ context.Context, id uuid.UUID) (bool, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.jobs[id]
	if !ok {
		return false, common.ErrNotFound
	}
	if row.Status != constants.JobStatusQueued {
		return false, nil
	}
	now := time.Now().UTC()
	row.Status = constants.JobStatusCanceled
	row.CompletedAt = &now
	return true, nil
}

func (v memJobs) ListQueued(_ context.Context) ([]*entity.ProcessingJob, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.ProcessingJob
	for _, id := range s.jobOrder {
		if row := s.jobs[id]; row.Status == constants.JobStatusQueued {
			out = append(out, copyJob(row))
		}
	}
	return out, nil
}

func (v memJobs) StaleProcessing(_ context.Context, cutoff time.Time) ([]*entity.ProcessingJob, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.ProcessingJob
	for _, id := range s.jobOrder {
		row := s.jobs[id]
		if row.Status != constants.JobStatusProcessing {
			continue
		}
		if row.StartedAt != nil && row.StartedAt.Before(cutoff) {
			out = append(out, copyJob(row))
		}
	}
	return out, nil
}

// --- MetricRepository ---

func (v memMetrics) InsertBatch(_ context.Context, rows []*entity.ExtractedMetric) ([]*entity.ExtractedMetric, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.ExtractedMetric, 0, len(rows))
	for _, m := range rows {
		version := 1
		for _, existing := range s.metrics {
			if existing.PropertyID == m.PropertyID &&
				existing.MetricType == m.MetricType &&
				existing.Period == m.Period &&
				existing.Version >= version {
				version = existing.Version + 1
			}
		}
		row := &entity.ExtractedMetric{
			ID:               uuid.New(),
			PropertyID:       m.PropertyID,
			MetricType:       m.MetricType,
			Value:            m.Value,
			Period:           m.Period,
			SourceDocumentID: m.SourceDocumentID,
			Version:          version,
			ExtractedAt:      time.Now().UTC(),
		}
		s.metrics = append(s.metrics, row)
		out = append(out, copyMetric(row))
	}
	return out, nil
}

func (v memMetrics) History(_ context.Context, propertyID uuid.UUID, metricType constants.MetricType) ([]entity.MetricPoint, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	current := make(map[string]*entity.ExtractedMetric)
	for _, m := range s.metrics {
		if m.PropertyID != propertyID || m.MetricType != metricType {
			continue
		}
		if prev, ok := current[m.Period]; !ok || m.Version > prev.Version {
			current[m.Period] = m
		}
	}
	periods := make([]string, 0, len(current))
	for p := range current {
		periods = append(periods, p)
	}
	sort.Strings(periods)
	points := make([]entity.MetricPoint, len(periods))
	for i, p := range periods {
		points[i] = entity.MetricPoint{Period: p, Value: current[p].Value}
	}
	return points, nil
}

func (v memMetrics) Current(_ context.Context, propertyID uuid.UUID) ([]*entity.ExtractedMetric, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	latest := make(map[constants.MetricType]*entity.ExtractedMetric)
	for _, m := range s.metrics {
		if m.PropertyID != propertyID {
			continue
		}
		prev, ok := latest[m.MetricType]
		if !ok || m.Period > prev.Period || (m.Period == prev.Period && m.Version > prev.Version) {
			latest[m.MetricType] = m
		}
	}
	out := make([]*entity.ExtractedMetric, 0, len(latest))
	for _, m := range latest {
		out = append(out, copyMetric(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MetricType < out[j].MetricType })
	return out, nil
}

func (v memMetrics) PropertyIDs(_ context.Context) ([]uuid.UUID, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, m := range s.metrics {
		if _, ok := seen[m.PropertyID]; ok {
			continue
		}
		seen[m.PropertyID] = struct{}{}
		ids = append(ids, m.PropertyID)
	}
	return ids, nil
}

// --- AlertRepository ---

func (v memAlerts) PendingBySignature(_ context.Context, propertyID uuid.UUID, metricType constants.MetricType) (*entity.CommitteeAlert, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.alerts {
		if a.PropertyID == propertyID && a.MetricType == metricType && a.Status == constants.AlertStatusPending {
			return copyAlert(a), nil
		}
	}
	return nil, nil
}

func (v memAlerts) CreateWithLock(_ context.Context, alert *entity.CommitteeAlert, lock *entity.WorkflowLock) (*entity.CommitteeAlert, *entity.WorkflowLock, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.alerts {
		if a.PropertyID == alert.PropertyID && a.MetricType == alert.MetricType && a.Status == constants.AlertStatusPending {
			return nil, nil, common.NewAppError("DUPLICATE_PENDING",
				"pending alert already exists for signature", common.ErrDuplicatePending)
		}
	}
	now := time.Now().UTC()
	alertRow := &entity.CommitteeAlert{
		ID:             uuid.New(),
		PropertyID:     alert.PropertyID,
		AlertType:      alert.AlertType,
		MetricType:     alert.MetricType,
		Severity:       alert.Severity,
		MetricSnapshot: alert.MetricSnapshot,
		Status:         constants.AlertStatusPending,
		CreatedAt:      now,
	}
	lockRow := &entity.WorkflowLock{
		ID:             uuid.New(),
		PropertyID:     alert.PropertyID,
		AlertID:        alertRow.ID,
		LockType:       lock.LockType,
		BlockedActions: append([]constants.ActionType(nil), lock.BlockedActions...),
		Status:         constants.LockStatusLocked,
		LockedAt:       now,
	}
	// Single critical section: both rows appear together or not at all.
	s.alerts[alertRow.ID] = alertRow
	s.locks[lockRow.ID] = lockRow
	return copyAlert(alertRow), copyLock(lockRow), nil
}

func (v memAlerts) UpdatePending(_ context.Context, alertID uuid.UUID, severity constants.Severity, snapshot json.RawMessage) error {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.alerts[alertID]
	if !ok {
		return common.ErrNotFound
	}
	if row.Status != constants.AlertStatusPending {
		return common.NewInvariantViolation("alert is not pending")
	}
	row.Severity = severity
	row.MetricSnapshot = snapshot
	return nil
}

func (v memAlerts) Get(_ context.Context, alertID uuid.UUID) (*entity.CommitteeAlert, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.alerts[alertID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copyAlert(row), nil
}

func (v memAlerts) ResolveCascade(_ context.Context, alertID uuid.UUID, decision constants.ResolutionDecision, approver, notes string) ([]*entity.WorkflowLock, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.alerts[alertID]
	if !ok {
		return nil, common.ErrNotFound
	}
	if row.Status != constants.AlertStatusPending {
		return nil, common.NewInvariantViolation("alert is not pending")
	}
	now := time.Now().UTC()
	row.Status = constants.AlertStatus(decision)
	row.ResolvedAt = &now
	row.ResolvedBy = &approver
	row.ResolutionNotes = &notes

	var out []*entity.WorkflowLock
	for _, l := range s.locks {
		if l.AlertID != alertID {
			continue
		}
		if l.Status == constants.LockStatusLocked {
			l.Status = constants.LockStatusUnlocked
			unlockedAt := now
			l.UnlockedAt = &unlockedAt
		}
		out = append(out, copyLock(l))
	}
	return out, nil
}

func (v memAlerts) ListByProperty(_ context.Context, propertyID uuid.UUID) ([]*entity.CommitteeAlert, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.CommitteeAlert
	for _, a := range s.alerts {
		if a.PropertyID == propertyID {
			out = append(out, copyAlert(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// --- LockRepository ---

func (v memLocks) ByAlert(_ context.Context, alertID uuid.UUID) ([]*entity.WorkflowLock, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.WorkflowLock
	for _, l := range s.locks {
		if l.AlertID == alertID {
			out = append(out, copyLock(l))
		}
	}
	return out, nil
}

func (v memLocks) ActiveByProperty(_ context.Context, propertyID uuid.UUID) ([]*entity.WorkflowLock, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.WorkflowLock
	for _, l := range s.locks {
		if l.PropertyID == propertyID && l.Status == constants.LockStatusLocked {
			out = append(out, copyLock(l))
		}
	}
	return out, nil
}

func (v memLocks) ListByProperty(_ context.Context, propertyID uuid.UUID) ([]*entity.WorkflowLock, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.WorkflowLock
	for _, l := range s.locks {
		if l.PropertyID == propertyID {
			out = append(out, copyLock(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LockedAt.After(out[j].LockedAt) })
	return out, nil
}

func (v memLocks) ExpireOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	n := 0
	for _, l := range s.locks {
		if l.Status != constants.LockStatusLocked || !l.LockedAt.Before(cutoff) {
			continue
		}
		l.Status = constants.LockStatusExpired
		unlockedAt := now
		l.UnlockedAt = &unlockedAt
		n++
	}
	return n, nil
}

// --- PropertyRepository ---

func (v memProperties) Upsert(_ context.Context, p *entity.Property) (*entity.Property, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.properties[p.ID]
	if !ok {
		row = &entity.Property{ID: p.ID, CreatedAt: time.Now().UTC()}
		s.properties[p.ID] = row
	}
	row.Name = p.Name
	row.PropertyClass = p.PropertyClass
	return copyProperty(row), nil
}

func (v memProperties) Get(_ context.Context, id uuid.UUID) (*entity.Property, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.properties[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copyProperty(row), nil
}

func (v memProperties) ClassOf(ctx context.Context, id uuid.UUID) constants.PropertyClass {
	p, err := v.Get(ctx, id)
	if err != nil {
		return constants.ClassStabilized
	}
	return p.PropertyClass
}

// --- copies ---

func copyJob(j *entity.ProcessingJob) *entity.ProcessingJob {
	out := *j
	return &out
}

func copyMetric(m *entity.ExtractedMetric) *entity.ExtractedMetric {
	out := *m
	return &out
}

func copyAlert(a *entity.CommitteeAlert) *entity.CommitteeAlert {
	out := *a
	out.MetricSnapshot = append(json.RawMessage(nil), a.MetricSnapshot...)
	return &out
}

func copyLock(l *entity.WorkflowLock) *entity.WorkflowLock {
	out := *l
	out.BlockedActions = append([]constants.ActionType(nil), l.BlockedActions...)
	return &out
}

func copyProperty(p *entity.Property) *entity.Property {
	out := *p
	return &out
}
