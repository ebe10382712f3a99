package server

import (
	"context"
	"strings"

	"github.com/propertyops/asset-governor/constants"
	governancepb "github.com/propertyops/asset-governor/gen/proto/governance/v1"
	"github.com/propertyops/asset-governor/internal/common"
)

func (s *GovernanceService) IsActionBlocked(ctx context.Context, req *governancepb.IsActionBlockedRequest) (*governancepb.IsActionBlockedResponse, error) {
	propertyID, err := parseID("property_id", req.GetPropertyId())
	if err != nil {
		return nil, err
	}
	action := constants.ActionType(strings.ToUpper(strings.TrimSpace(req.GetAction())))
	switch action {
	case constants.ActionRefinance, constants.ActionSell, constants.ActionDispose:
	default:
		return nil, common.InvalidArgumentErrorf("unknown action %q", req.GetAction())
	}

	blocked, err := s.locks.IsActionBlocked(ctx, propertyID, action)
	if err != nil {
		return nil, toStatusError(err, "lock query failed")
	}
	return &governancepb.IsActionBlockedResponse{Blocked: blocked}, nil
}

func (s *GovernanceService) GetActiveLocks(ctx context.Context, req *governancepb.GetActiveLocksRequest) (*governancepb.GetActiveLocksResponse, error) {
	propertyID, err := parseID("property_id", req.GetPropertyId())
	if err != nil {
		return nil, err
	}
	active, err := s.locks.ActiveLocks(ctx, propertyID)
	if err != nil {
		return nil, toStatusError(err, "lock query failed")
	}
	locks := make([]*governancepb.WorkflowLock, len(active))
	for i, l := range active {
		locks[i] = toPBLock(l)
	}
	return &governancepb.GetActiveLocksResponse{Locks: locks}, nil
}

func (s *GovernanceService) GetLockSummary(ctx context.Context, req *governancepb.GetLockSummaryRequest) (*governancepb.GetLockSummaryResponse, error) {
	propertyID, err := parseID("property_id", req.GetPropertyId())
	if err != nil {
		return nil, err
	}
	sum, err := s.locks.Summary(ctx, propertyID)
	if err != nil {
		return nil, toStatusError(err, "lock summary failed")
	}
	active, err := s.locks.ActiveLocks(ctx, propertyID)
	if err != nil {
		return nil, toStatusError(err, "lock query failed")
	}

	actions := make([]string, len(sum.BlockedActions))
	for i, a := range sum.BlockedActions {
		actions[i] = string(a)
	}
	locks := make([]*governancepb.WorkflowLock, len(active))
	for i, l := range active {
		locks[i] = toPBLock(l)
	}
	return &governancepb.GetLockSummaryResponse{
		ActiveLocks:        int32(sum.ActiveLocks),
		TotalLocks:         int32(sum.TotalLocks),
		BlockedActions:     actions,
		AvgDurationSeconds: int64(sum.AvgDuration.Seconds()),
		Locks:              locks,
	}, nil
}
