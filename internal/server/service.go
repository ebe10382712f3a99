package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	governancepb "github.com/propertyops/asset-governor/gen/proto/governance/v1"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/core/async"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/export"
	"github.com/propertyops/asset-governor/internal/locking"
	"github.com/propertyops/asset-governor/internal/repository"
)

// GovernanceService implements the gRPC surface. Handlers live in the
// per-domain files next to this one.
type GovernanceService struct {
	governancepb.UnimplementedGovernanceServiceServer
	queue    *async.Queue
	jobRepo  repository.JobRepository
	metrics  repository.MetricRepository
	alerts   repository.AlertRepository
	locks    *locking.Manager
	exporter *export.Service
	logger   *slog.Logger
}

func NewGovernanceService(
	queue *async.Queue,
	jobRepo repository.JobRepository,
	metrics repository.MetricRepository,
	alerts repository.AlertRepository,
	locks *locking.Manager,
	exporter *export.Service,
	logger *slog.Logger,
) *GovernanceService {
	return &GovernanceService{
		queue:    queue,
		jobRepo:  jobRepo,
		metrics:  metrics,
		alerts:   alerts,
		locks:    locks,
		exporter: exporter,
		logger:   logger,
	}
}

func parseID(field, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

// toStatusError maps domain errors onto gRPC codes.
func toStatusError(err error, msg string) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(msg)
	case errors.Is(err, common.ErrInvariantViolation):
		return common.FailedPreconditionError(err.Error())
	case errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentError(err.Error())
	default:
		return common.InternalErrorf("%s: %v", msg, err)
	}
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func toPBJob(j *entity.ProcessingJob) *governancepb.ProcessingJob {
	pb := &governancepb.ProcessingJob{
		Id:           j.ID.String(),
		DocumentId:   j.DocumentID.String(),
		PropertyId:   j.PropertyID.String(),
		BlobRef:      j.BlobRef,
		Status:       string(j.Status),
		EnqueuedAt:   j.EnqueuedAt.Format(time.RFC3339Nano),
		StartedAt:    fmtTime(j.StartedAt),
		CompletedAt:  fmtTime(j.CompletedAt),
		AttemptCount: int32(j.AttemptCount),
	}
	if j.LastError != nil {
		pb.LastError = *j.LastError
	}
	return pb
}

func toPBAlert(a *entity.CommitteeAlert) *governancepb.CommitteeAlert {
	pb := &governancepb.CommitteeAlert{
		Id:             a.ID.String(),
		PropertyId:     a.PropertyID.String(),
		AlertType:      string(a.AlertType),
		MetricType:     string(a.MetricType),
		Severity:       string(a.Severity),
		MetricSnapshot: string(a.MetricSnapshot),
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339Nano),
		ResolvedAt:     fmtTime(a.ResolvedAt),
	}
	if a.ResolvedBy != nil {
		pb.ResolvedBy = *a.ResolvedBy
	}
	if a.ResolutionNotes != nil {
		pb.ResolutionNotes = *a.ResolutionNotes
	}
	return pb
}

func toPBLock(l *entity.WorkflowLock) *governancepb.WorkflowLock {
	actions := make([]string, len(l.BlockedActions))
	for i, a := range l.BlockedActions {
		actions[i] = string(a)
	}
	return &governancepb.WorkflowLock{
		Id:             l.ID.String(),
		PropertyId:     l.PropertyID.String(),
		AlertId:        l.AlertID.String(),
		LockType:       string(l.LockType),
		BlockedActions: actions,
		Status:         string(l.Status),
		LockedAt:       l.LockedAt.Format(time.RFC3339Nano),
		UnlockedAt:     fmtTime(l.UnlockedAt),
	}
}
