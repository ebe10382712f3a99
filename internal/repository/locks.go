package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/gen/ent"
	"github.com/propertyops/asset-governor/gen/ent/workflowlock"
	"github.com/propertyops/asset-governor/internal/entity"
)

// LockRepository reads workflow locks and runs the expiry sweep. Lock creation
// and unlock both live on AlertRepository because they are transactions owned
// by an alert; expiry is the only transition a lock undergoes on its own.
type LockRepository interface {
	ByAlert(ctx context.Context, alertID uuid.UUID) ([]*entity.WorkflowLock, error)
	ActiveByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.WorkflowLock, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.WorkflowLock, error)
	// ExpireOlderThan transitions LOCKED rows older than cutoff to EXPIRED and
	// returns how many rows changed. Idempotent: expired rows never match again.
	ExpireOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type lockRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewLockRepository(entc *ent.Client, log *slog.Logger) LockRepository {
	return &lockRepo{ent: entc, log: log}
}

func (r *lockRepo) ByAlert(ctx context.Context, alertID uuid.UUID) ([]*entity.WorkflowLock, error) {
	rows, err := r.ent.WorkflowLock.
		Query().
		Where(workflowlock.AlertID(alertID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toLocks(rows), nil
}

func (r *lockRepo) ActiveByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.WorkflowLock, error) {
	rows, err := r.ent.WorkflowLock.
		Query().
		Where(
			workflowlock.PropertyID(propertyID),
			workflowlock.Status(string(constants.LockStatusLocked)),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toLocks(rows), nil
}

func (r *lockRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.WorkflowLock, error) {
	rows, err := r.ent.WorkflowLock.
		Query().
		Where(workflowlock.PropertyID(propertyID)).
		Order(ent.Desc(workflowlock.FieldLockedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toLocks(rows), nil
}

func (r *lockRepo) ExpireOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	now := time.Now().UTC()
	n, err := r.ent.WorkflowLock.
		Update().
		Where(
			workflowlock.Status(string(constants.LockStatusLocked)),
			workflowlock.LockedAtLT(cutoff),
		).
		SetStatus(string(constants.LockStatusExpired)).
		SetUnlockedAt(now).
		Save(ctx)
	if err != nil {
		r.log.Error("lock expiry sweep failed", "err", err)
		return 0, err
	}
	if n > 0 {
		r.log.Info("locks expired", "count", n, "cutoff", cutoff)
	}
	return n, nil
}

func toLock(row *ent.WorkflowLock) *entity.WorkflowLock {
	actions := make([]constants.ActionType, len(row.BlockedActions))
	for i, a := range row.BlockedActions {
		actions[i] = constants.ActionType(a)
	}
	return &entity.WorkflowLock{
		ID:             row.ID,
		PropertyID:     row.PropertyID,
		AlertID:        row.AlertID,
		LockType:       constants.LockType(row.LockType),
		BlockedActions: actions,
		Status:         constants.LockStatus(row.Status),
		LockedAt:       row.LockedAt,
		UnlockedAt:     row.UnlockedAt,
	}
}

func toLocks(rows []*ent.WorkflowLock) []*entity.WorkflowLock {
	out := make([]*entity.WorkflowLock, len(rows))
	for i, row := range rows {
		out[i] = toLock(row)
	}
	return out
}
