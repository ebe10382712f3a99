package server

import (
	"context"

	"github.com/propertyops/asset-governor/constants"
	governancepb "github.com/propertyops/asset-governor/gen/proto/governance/v1"
	"github.com/propertyops/asset-governor/internal/common"
)

func (s *GovernanceService) GetMetricHistory(ctx context.Context, req *governancepb.GetMetricHistoryRequest) (*governancepb.GetMetricHistoryResponse, error) {
	propertyID, err := parseID("property_id", req.GetPropertyId())
	if err != nil {
		return nil, err
	}
	metricType, ok := constants.CanonicalMetricType(req.GetMetricType())
	if !ok {
		return nil, common.InvalidArgumentErrorf("unknown metric_type %q", req.GetMetricType())
	}

	points, err := s.metrics.History(ctx, propertyID, metricType)
	if err != nil {
		return nil, toStatusError(err, "metric history query failed")
	}
	out := make([]*governancepb.MetricPoint, len(points))
	for i, p := range points {
		out[i] = &governancepb.MetricPoint{Period: p.Period, Value: p.Value}
	}
	return &governancepb.GetMetricHistoryResponse{Points: out}, nil
}
