package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/gen/ent"
	"github.com/propertyops/asset-governor/gen/ent/committeealert"
	"github.com/propertyops/asset-governor/gen/ent/workflowlock"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/entity"
)

// AlertRepository persists committee alerts. Alert and lock creation share one
// transaction: an alert must never exist without its lock, and vice versa.
// Resolution cascades to every lock the alert owns inside the same transaction.
type AlertRepository interface {
	PendingBySignature(ctx context.Context, propertyID uuid.UUID, metricType constants.MetricType) (*entity.CommitteeAlert, error)
	CreateWithLock(ctx context.Context, alert *entity.CommitteeAlert, lock *entity.WorkflowLock) (*entity.CommitteeAlert, *entity.WorkflowLock, error)
	UpdatePending(ctx context.Context, alertID uuid.UUID, severity constants.Severity, snapshot json.RawMessage) error
	Get(ctx context.Context, alertID uuid.UUID) (*entity.CommitteeAlert, error)
	ResolveCascade(ctx context.Context, alertID uuid.UUID, decision constants.ResolutionDecision, approver, notes string) ([]*entity.WorkflowLock, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.CommitteeAlert, error)
}

type alertRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAlertRepository(entc *ent.Client, log *slog.Logger) AlertRepository {
	return &alertRepo{ent: entc, log: log}
}

func (r *alertRepo) PendingBySignature(ctx context.Context, propertyID uuid.UUID, metricType constants.MetricType) (*entity.CommitteeAlert, error) {
	row, err := r.ent.CommitteeAlert.
		Query().
		Where(
			committeealert.PropertyID(propertyID),
			committeealert.MetricType(string(metricType)),
			committeealert.Status(string(constants.AlertStatusPending)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toAlert(row), nil
}

func (r *alertRepo) CreateWithLock(ctx context.Context, alert *entity.CommitteeAlert, lock *entity.WorkflowLock) (*entity.CommitteeAlert, *entity.WorkflowLock, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, nil, err
	}
	alertRow, err := tx.CommitteeAlert.
		Create().
		SetPropertyID(alert.PropertyID).
		SetAlertType(string(alert.AlertType)).
		SetMetricType(string(alert.MetricType)).
		SetSeverity(string(alert.Severity)).
		SetMetricSnapshot(alert.MetricSnapshot).
		SetStatus(string(constants.AlertStatusPending)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// The pending-signature unique index fired: another writer got
			// there first. The caller merges into that alert instead.
			return nil, nil, rollback(tx, common.NewAppError("DUPLICATE_PENDING",
				"pending alert already exists for signature", common.ErrDuplicatePending))
		}
		return nil, nil, rollback(tx, err)
	}
	lockRow, err := tx.WorkflowLock.
		Create().
		SetPropertyID(alert.PropertyID).
		SetAlertID(alertRow.ID).
		SetLockType(string(lock.LockType)).
		SetBlockedActions(actionsToStrings(lock.BlockedActions)).
		SetStatus(string(constants.LockStatusLocked)).
		Save(ctx)
	if err != nil {
		return nil, nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	r.log.Info("alert created with lock",
		"alert_id", alertRow.ID,
		"property_id", alert.PropertyID,
		"alert_type", alert.AlertType,
		"severity", alert.Severity,
		"lock_type", lock.LockType,
	)
	return toAlert(alertRow), toLock(lockRow), nil
}

// UpdatePending escalates a pending alert in place: severity and snapshot move,
// id and created_at stay. No-op with InvariantViolation if the alert is no
// longer pending.
func (r *alertRepo) UpdatePending(ctx context.Context, alertID uuid.UUID, severity constants.Severity, snapshot json.RawMessage) error {
	n, err := r.ent.CommitteeAlert.
		Update().
		Where(
			committeealert.ID(alertID),
			committeealert.Status(string(constants.AlertStatusPending)),
		).
		SetSeverity(string(severity)).
		SetMetricSnapshot(snapshot).
		Save(ctx)
	if err != nil {
		r.log.Error("alert update failed", "alert_id", alertID, "err", err)
		return err
	}
	if n == 0 {
		return common.NewInvariantViolation("alert is not pending")
	}
	r.log.Info("alert escalated in place", "alert_id", alertID, "severity", severity)
	return nil
}

func (r *alertRepo) Get(ctx context.Context, alertID uuid.UUID) (*entity.CommitteeAlert, error) {
	row, err := r.ent.CommitteeAlert.Get(ctx, alertID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toAlert(row), nil
}

func (r *alertRepo) ResolveCascade(ctx context.Context, alertID uuid.UUID, decision constants.ResolutionDecision, approver, notes string) ([]*entity.WorkflowLock, error) {
	now := time.Now().UTC()
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	n, err := tx.CommitteeAlert.
		Update().
		Where(
			committeealert.ID(alertID),
			committeealert.Status(string(constants.AlertStatusPending)),
		).
		SetStatus(string(decision)).
		SetResolvedAt(now).
		SetResolvedBy(approver).
		SetResolutionNotes(notes).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if n == 0 {
		exists, eerr := tx.CommitteeAlert.
			Query().
			Where(committeealert.ID(alertID)).
			Exist(ctx)
		if eerr != nil {
			return nil, rollback(tx, eerr)
		}
		if rerr := tx.Rollback(); rerr != nil {
			return nil, rerr
		}
		if !exists {
			return nil, common.ErrNotFound
		}
		// Already resolved: reject without touching locks.
		return nil, common.NewInvariantViolation("alert is not pending")
	}
	_, err = tx.WorkflowLock.
		Update().
		Where(
			workflowlock.AlertID(alertID),
			workflowlock.Status(string(constants.LockStatusLocked)),
		).
		SetStatus(string(constants.LockStatusUnlocked)).
		SetUnlockedAt(now).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}
	rows, err := tx.WorkflowLock.
		Query().
		Where(workflowlock.AlertID(alertID)).
		All(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	out := make([]*entity.WorkflowLock, len(rows))
	for i, row := range rows {
		out[i] = toLock(row)
	}
	r.log.Info("alert resolved", "alert_id", alertID, "decision", decision, "approver", approver, "locks", len(out))
	return out, nil
}

func (r *alertRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.CommitteeAlert, error) {
	rows, err := r.ent.CommitteeAlert.
		Query().
		Where(committeealert.PropertyID(propertyID)).
		Order(ent.Desc(committeealert.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.CommitteeAlert, len(rows))
	for i, row := range rows {
		out[i] = toAlert(row)
	}
	return out, nil
}

func toAlert(row *ent.CommitteeAlert) *entity.CommitteeAlert {
	return &entity.CommitteeAlert{
		ID:              row.ID,
		PropertyID:      row.PropertyID,
		AlertType:       constants.AlertType(row.AlertType),
		MetricType:      constants.MetricType(row.MetricType),
		Severity:        constants.Severity(row.Severity),
		MetricSnapshot:  row.MetricSnapshot,
		Status:          constants.AlertStatus(row.Status),
		CreatedAt:       row.CreatedAt,
		ResolvedAt:      row.ResolvedAt,
		ResolvedBy:      row.ResolvedBy,
		ResolutionNotes: row.ResolutionNotes,
	}
}

func actionsToStrings(actions []constants.ActionType) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}
