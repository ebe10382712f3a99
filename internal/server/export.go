package server

import (
	"context"

	governancepb "github.com/propertyops/asset-governor/gen/proto/governance/v1"
)

func (s *GovernanceService) ExportGovernanceReport(ctx context.Context, req *governancepb.ExportGovernanceReportRequest) (*governancepb.ExportGovernanceReportResponse, error) {
	propertyID, err := parseID("property_id", req.GetPropertyId())
	if err != nil {
		return nil, err
	}
	b, err := s.exporter.ExportGovernanceXLSX(ctx, propertyID)
	if err != nil {
		s.logger.Error("governance export failed", "property_id", propertyID, "error", err)
		return nil, toStatusError(err, "export failed")
	}
	return &governancepb.ExportGovernanceReportResponse{Xlsx: b}, nil
}
