package core

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/alerting"
	"github.com/propertyops/asset-governor/internal/anomaly"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/extract"
	"github.com/propertyops/asset-governor/internal/repository"
)

// Processor runs one document through the pipeline: fetch, extract, persist,
// detect, alert. It owns no job state; the queue decides what a returned
// error means for the job.
type Processor struct {
	blobs     extract.BlobStore
	extractor extract.Extractor
	metrics   repository.MetricRepository
	props     repository.PropertyRepository
	detector  *anomaly.Detector
	alerts    *alerting.Manager
	log       *slog.Logger
}

func NewProcessor(
	blobs extract.BlobStore,
	extractor extract.Extractor,
	metrics repository.MetricRepository,
	props repository.PropertyRepository,
	detector *anomaly.Detector,
	alerts *alerting.Manager,
	log *slog.Logger,
) *Processor {
	return &Processor{
		blobs:     blobs,
		extractor: extractor,
		metrics:   metrics,
		props:     props,
		detector:  detector,
		alerts:    alerts,
		log:       log,
	}
}

// Result summarizes one processed document.
type Result struct {
	JobID        uuid.UUID
	Period       string
	Persisted    []*entity.ExtractedMetric
	AlertsRaised []*entity.CommitteeAlert
	Warnings     []string
}

// Process is safe to call again for a document that already ran: metric rows
// are versioned, and repeat violations are absorbed by the pending alert for
// their signature.
func (p *Processor) Process(ctx context.Context, job *entity.ProcessingJob) (*Result, error) {
	content, err := p.blobs.Fetch(ctx, job.BlobRef)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, common.NewTransientError("canceled before extraction", err)
	}

	payload, err := p.extractor.Extract(ctx, extract.Document{
		DocumentID: job.DocumentID,
		PropertyID: job.PropertyID,
		BlobRef:    job.BlobRef,
		Content:    content,
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, common.NewTransientError("canceled before persistence", err)
	}

	rows := make([]*entity.ExtractedMetric, 0, len(payload.Metrics))
	for metricType, value := range payload.Metrics {
		rows = append(rows, &entity.ExtractedMetric{
			PropertyID:       job.PropertyID,
			MetricType:       metricType,
			Value:            value,
			Period:           payload.Period,
			SourceDocumentID: job.DocumentID,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].MetricType < rows[j].MetricType })

	persisted, err := p.metrics.InsertBatch(ctx, rows)
	if err != nil {
		return nil, common.NewTransientError("metric insert failed", err)
	}

	res := &Result{
		JobID:     job.ID,
		Period:    payload.Period,
		Persisted: persisted,
		Warnings:  payload.Warnings,
	}

	class := p.props.ClassOf(ctx, job.PropertyID)
	for _, metric := range persisted {
		if err := ctx.Err(); err != nil {
			return nil, common.NewTransientError("canceled during evaluation", err)
		}
		alert, err := p.evaluate(ctx, metric, class)
		if err != nil {
			return nil, err
		}
		if alert != nil {
			res.AlertsRaised = append(res.AlertsRaised, alert)
		}
	}

	p.log.Info("document processed",
		"job_id", job.ID,
		"document_id", job.DocumentID,
		"property_id", job.PropertyID,
		"period", payload.Period,
		"metrics", len(persisted),
		"alerts", len(res.AlertsRaised),
	)
	return res, nil
}

// evaluate judges one persisted metric against its history up to and
// including its own period, so a late document for an old period is compared
// with what was known then, not with values that came after.
func (p *Processor) evaluate(ctx context.Context, metric *entity.ExtractedMetric, class constants.PropertyClass) (*entity.CommitteeAlert, error) {
	hist, err := p.metrics.History(ctx, metric.PropertyID, metric.MetricType)
	if err != nil {
		return nil, common.NewTransientError("metric history query failed", err)
	}
	series := hist
	for i, pt := range hist {
		if pt.Period == metric.Period {
			series = hist[:i+1]
			break
		}
	}
	verdict := p.detector.Evaluate(metric.MetricType, series, class)
	return p.alerts.EvaluateMetric(ctx, metric, verdict)
}
