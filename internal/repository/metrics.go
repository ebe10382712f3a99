package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/gen/ent"
	"github.com/propertyops/asset-governor/gen/ent/extractedmetric"
	"github.com/propertyops/asset-governor/internal/entity"
)

// MetricRepository reads and appends metric rows. Rows are never updated:
// each reprocessing of a document inserts the next version.
type MetricRepository interface {
	// InsertBatch appends one version of each row, assigning versions as
	// MAX(version)+1 per (property, metric_type, period). Callers hold the
	// per-property gate, so version assignment cannot race.
	InsertBatch(ctx context.Context, rows []*entity.ExtractedMetric) ([]*entity.ExtractedMetric, error)
	// History returns the current (highest-version) value per period for one
	// metric series, ordered by period ascending.
	History(ctx context.Context, propertyID uuid.UUID, metricType constants.MetricType) ([]entity.MetricPoint, error)
	// Current returns the latest current row per metric type for a property.
	Current(ctx context.Context, propertyID uuid.UUID) ([]*entity.ExtractedMetric, error)
	// PropertyIDs lists every property that has at least one metric row.
	PropertyIDs(ctx context.Context) ([]uuid.UUID, error)
}

type metricRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewMetricRepository(entc *ent.Client, log *slog.Logger) MetricRepository {
	return &metricRepo{ent: entc, log: log}
}

func (r *metricRepo) InsertBatch(ctx context.Context, rows []*entity.ExtractedMetric) ([]*entity.ExtractedMetric, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExtractedMetric, 0, len(rows))
	for _, m := range rows {
		var maxVersion []struct {
			Max int `json:"max"`
		}
		err := tx.ExtractedMetric.
			Query().
			Where(
				extractedmetric.PropertyID(m.PropertyID),
				extractedmetric.MetricType(string(m.MetricType)),
				extractedmetric.Period(m.Period),
			).
			Aggregate(ent.Max(extractedmetric.FieldVersion)).
			Scan(ctx, &maxVersion)
		if err != nil {
			return nil, rollback(tx, err)
		}
		version := 1
		if len(maxVersion) > 0 {
			version = maxVersion[0].Max + 1
		}
		row, err := tx.ExtractedMetric.
			Create().
			SetPropertyID(m.PropertyID).
			SetMetricType(string(m.MetricType)).
			SetValue(m.Value).
			SetPeriod(m.Period).
			SetSourceDocumentID(m.SourceDocumentID).
			SetVersion(version).
			SetExtractedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, err)
		}
		out = append(out, toMetric(row))
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.log.Info("metrics persisted", "rows", len(out), "property_id", rows[0].PropertyID)
	return out, nil
}

func (r *metricRepo) History(ctx context.Context, propertyID uuid.UUID, metricType constants.MetricType) ([]entity.MetricPoint, error) {
	rows, err := r.ent.ExtractedMetric.
		Query().
		Where(
			extractedmetric.PropertyID(propertyID),
			extractedmetric.MetricType(string(metricType)),
		).
		Order(
			ent.Asc(extractedmetric.FieldPeriod),
			ent.Desc(extractedmetric.FieldVersion),
		).
		All(ctx)
	if err != nil {
		r.log.Error("metric history query failed", "property_id", propertyID, "metric_type", metricType, "err", err)
		return nil, err
	}
	// Highest version wins per period; rows arrive version-descending within
	// each period, so the first row seen is the current one.
	points := make([]entity.MetricPoint, 0, len(rows))
	lastPeriod := ""
	for _, row := range rows {
		if row.Period == lastPeriod {
			continue
		}
		lastPeriod = row.Period
		points = append(points, entity.MetricPoint{Period: row.Period, Value: row.Value})
	}
	return points, nil
}

func (r *metricRepo) Current(ctx context.Context, propertyID uuid.UUID) ([]*entity.ExtractedMetric, error) {
	rows, err := r.ent.ExtractedMetric.
		Query().
		Where(extractedmetric.PropertyID(propertyID)).
		Order(
			ent.Asc(extractedmetric.FieldMetricType),
			ent.Desc(extractedmetric.FieldPeriod),
			ent.Desc(extractedmetric.FieldVersion),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExtractedMetric, 0)
	lastType := ""
	for _, row := range rows {
		if row.MetricType == lastType {
			continue
		}
		lastType = row.MetricType
		out = append(out, toMetric(row))
	}
	return out, nil
}

func (r *metricRepo) PropertyIDs(ctx context.Context) ([]uuid.UUID, error) {
	raw, err := r.ent.ExtractedMetric.
		Query().
		GroupBy(extractedmetric.FieldPropertyID).
		Strings(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return rerr
	}
	return err
}

func toMetric(row *ent.ExtractedMetric) *entity.ExtractedMetric {
	return &entity.ExtractedMetric{
		ID:               row.ID,
		PropertyID:       row.PropertyID,
		MetricType:       constants.MetricType(row.MetricType),
		Value:            row.Value,
		Period:           row.Period,
		SourceDocumentID: row.SourceDocumentID,
		Version:          row.Version,
		ExtractedAt:      row.ExtractedAt,
	}
}
