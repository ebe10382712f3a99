package server

import (
	"context"

	governancepb "github.com/propertyops/asset-governor/gen/proto/governance/v1"
	"github.com/propertyops/asset-governor/internal/common"
)

func (s *GovernanceService) IngestDocument(ctx context.Context, req *governancepb.IngestDocumentRequest) (*governancepb.IngestDocumentResponse, error) {
	documentID, err := parseID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	propertyID, err := parseID("property_id", req.GetPropertyId())
	if err != nil {
		return nil, err
	}
	if req.GetBlobRef() == "" {
		return nil, common.InvalidArgumentError("blob_ref is required")
	}

	job, err := s.queue.Enqueue(ctx, documentID, propertyID, req.GetBlobRef())
	if err != nil {
		s.logger.Error("ingest enqueue failed", "document_id", documentID, "error", err)
		return nil, toStatusError(err, "enqueue failed")
	}
	return &governancepb.IngestDocumentResponse{Job: toPBJob(job)}, nil
}

func (s *GovernanceService) GetJob(ctx context.Context, req *governancepb.GetJobRequest) (*governancepb.GetJobResponse, error) {
	jobID, err := parseID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.jobRepo.Get(ctx, jobID)
	if err != nil {
		return nil, toStatusError(err, "job not found")
	}
	return &governancepb.GetJobResponse{Job: toPBJob(job)}, nil
}

func (s *GovernanceService) GetJobByDocument(ctx context.Context, req *governancepb.GetJobByDocumentRequest) (*governancepb.GetJobResponse, error) {
	documentID, err := parseID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	job, err := s.jobRepo.LatestByDocument(ctx, documentID)
	if err != nil {
		return nil, toStatusError(err, "job not found")
	}
	return &governancepb.GetJobResponse{Job: toPBJob(job)}, nil
}

func (s *GovernanceService) CancelJob(ctx context.Context, req *governancepb.CancelJobRequest) (*governancepb.CancelJobResponse, error) {
	jobID, err := parseID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	canceled, err := s.queue.Cancel(ctx, jobID)
	if err != nil {
		return nil, toStatusError(err, "cancel failed")
	}
	return &governancepb.CancelJobResponse{Canceled: canceled}, nil
}
