package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/gen/ent"
	"github.com/propertyops/asset-governor/gen/ent/processingjob"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/entity"
)

// JobRepository persists processing jobs and their status transitions. Only
// the worker holding a job's lease calls the Mark* methods.
type JobRepository interface {
	Create(ctx context.Context, job *entity.ProcessingJob) (*entity.ProcessingJob, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ProcessingJob, error)
	LatestByDocument(ctx context.Context, documentID uuid.UUID) (*entity.ProcessingJob, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) (*entity.ProcessingJob, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	Requeue(ctx context.Context, id uuid.UUID, message string) error
	Cancel(ctx context.Context, id uuid.UUID) (bool, error)
	// ListQueued returns QUEUED jobs in enqueue order, oldest first.
	ListQueued(ctx context.Context) ([]*entity.ProcessingJob, error)
	// StaleProcessing returns PROCESSING jobs whose lease started before
	// cutoff. Their workers are presumed dead.
	StaleProcessing(ctx context.Context, cutoff time.Time) ([]*entity.ProcessingJob, error)
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, job *entity.ProcessingJob) (*entity.ProcessingJob, error) {
	row, err := r.ent.ProcessingJob.
		Create().
		SetDocumentID(job.DocumentID).
		SetPropertyID(job.PropertyID).
		SetBlobRef(job.BlobRef).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("processing_job create failed", "document_id", job.DocumentID, "err", err)
		return nil, err
	}
	r.log.Info("processing_job queued", "job_id", row.ID, "document_id", job.DocumentID, "property_id", job.PropertyID)
	return toJob(row), nil
}

func (r *jobRepo) Get(ctx context.Context, id uuid.UUID) (*entity.ProcessingJob, error) {
	row, err := r.ent.ProcessingJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toJob(row), nil
}

func (r *jobRepo) LatestByDocument(ctx context.Context, documentID uuid.UUID) (*entity.ProcessingJob, error) {
	row, err := r.ent.ProcessingJob.
		Query().
		Where(processingjob.DocumentID(documentID)).
		Order(ent.Desc(processingjob.FieldEnqueuedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toJob(row), nil
}

// MarkProcessing moves a job to PROCESSING and counts the attempt. Valid from
// QUEUED (fresh or requeued); anything else is a rejected transition.
func (r *jobRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (*entity.ProcessingJob, error) {
	n, err := r.ent.ProcessingJob.
		Update().
		Where(processingjob.ID(id), processingjob.Status(string(constants.JobStatusQueued))).
		SetStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(time.Now().UTC()).
		AddAttemptCount(1).
		Save(ctx)
	if err != nil {
		r.log.Error("processing_job start failed", "job_id", id, "err", err)
		return nil, err
	}
	if n == 0 {
		return nil, common.NewInvariantViolation("job is not queued")
	}
	return r.Get(ctx, id)
}

func (r *jobRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.ProcessingJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusProcessed)).
		SetCompletedAt(time.Now().UTC()).
		ClearLastError().
		Save(ctx)
	if err != nil {
		r.log.Error("processing_job finish failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("processing_job processed", "job_id", id)
	return nil
}

func (r *jobRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.ProcessingJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetCompletedAt(time.Now().UTC()).
		SetLastError(message).
		Save(ctx)
	if err != nil {
		r.log.Error("processing_job fail-mark failed", "job_id", id, "err", err)
		return err
	}
	r.log.Warn("processing_job failed", "job_id", id, "error", message)
	return nil
}

// Requeue returns a job to QUEUED after a transient failure so a worker can
// retry it.
func (r *jobRepo) Requeue(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.ProcessingJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusQueued)).
		SetLastError(message).
		Save(ctx)
	if err != nil {
		r.log.Error("processing_job requeue failed", "job_id", id, "err", err)
		return err
	}
	return nil
}

// Cancel flips a still-queued job to CANCELED. Returns false without error
// when the job already left the queue.
func (r *jobRepo) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.ProcessingJob.
		Update().
		Where(processingjob.ID(id), processingjob.Status(string(constants.JobStatusQueued))).
		SetStatus(string(constants.JobStatusCanceled)).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.log.Error("processing_job cancel failed", "job_id", id, "err", err)
		return false, err
	}
	return n > 0, nil
}

func (r *jobRepo) ListQueued(ctx context.Context) ([]*entity.ProcessingJob, error) {
	rows, err := r.ent.ProcessingJob.
		Query().
		Where(processingjob.Status(string(constants.JobStatusQueued))).
		Order(ent.Asc(processingjob.FieldEnqueuedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toJobs(rows), nil
}

func (r *jobRepo) StaleProcessing(ctx context.Context, cutoff time.Time) ([]*entity.ProcessingJob, error) {
	rows, err := r.ent.ProcessingJob.
		Query().
		Where(
			processingjob.Status(string(constants.JobStatusProcessing)),
			processingjob.StartedAtLT(cutoff),
		).
		Order(ent.Asc(processingjob.FieldEnqueuedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toJobs(rows), nil
}

func toJobs(rows []*ent.ProcessingJob) []*entity.ProcessingJob {
	out := make([]*entity.ProcessingJob, len(rows))
	for i, row := range rows {
		out[i] = toJob(row)
	}
	return out
}

func toJob(row *ent.ProcessingJob) *entity.ProcessingJob {
	return &entity.ProcessingJob{
		ID:           row.ID,
		DocumentID:   row.DocumentID,
		PropertyID:   row.PropertyID,
		BlobRef:      row.BlobRef,
		Status:       constants.JobStatus(row.Status),
		EnqueuedAt:   row.EnqueuedAt,
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
		AttemptCount: row.AttemptCount,
		LastError:    row.LastError,
	}
}
