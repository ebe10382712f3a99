package server

import (
	"context"
	"strings"

	"github.com/propertyops/asset-governor/constants"
	governancepb "github.com/propertyops/asset-governor/gen/proto/governance/v1"
	"github.com/propertyops/asset-governor/internal/common"
)

func (s *GovernanceService) ListAlerts(ctx context.Context, req *governancepb.ListAlertsRequest) (*governancepb.ListAlertsResponse, error) {
	propertyID, err := parseID("property_id", req.GetPropertyId())
	if err != nil {
		return nil, err
	}
	alerts, err := s.alerts.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, toStatusError(err, "list alerts failed")
	}
	out := make([]*governancepb.CommitteeAlert, len(alerts))
	for i, a := range alerts {
		out[i] = toPBAlert(a)
	}
	return &governancepb.ListAlertsResponse{Alerts: out}, nil
}

func (s *GovernanceService) ResolveAlert(ctx context.Context, req *governancepb.ResolveAlertRequest) (*governancepb.ResolveAlertResponse, error) {
	alertID, err := parseID("alert_id", req.GetAlertId())
	if err != nil {
		return nil, err
	}
	decision := constants.ResolutionDecision(strings.ToUpper(strings.TrimSpace(req.GetDecision())))
	if decision != constants.DecisionApproved && decision != constants.DecisionRejected {
		return nil, common.InvalidArgumentErrorf("decision must be APPROVED or REJECTED, got %q", req.GetDecision())
	}

	released, err := s.locks.Resolve(ctx, alertID, decision, req.GetApprover(), req.GetNotes())
	if err != nil {
		s.logger.Warn("alert resolution rejected", "alert_id", alertID, "error", err)
		return nil, toStatusError(err, "resolve failed")
	}
	alert, err := s.alerts.Get(ctx, alertID)
	if err != nil {
		return nil, toStatusError(err, "alert not found after resolve")
	}

	locks := make([]*governancepb.WorkflowLock, len(released))
	for i, l := range released {
		locks[i] = toPBLock(l)
	}
	return &governancepb.ResolveAlertResponse{Alert: toPBAlert(alert), ReleasedLocks: locks}, nil
}
