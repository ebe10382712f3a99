package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
)

// ExtractedMetric is one append-only metric row. The highest version per
// (property, metric_type, period) is the current value.
type ExtractedMetric struct {
	ID               uuid.UUID            `json:"id"`
	PropertyID       uuid.UUID            `json:"property_id"`
	MetricType       constants.MetricType `json:"metric_type"`
	Value            float64              `json:"value"`
	Period           string               `json:"period"` // "YYYY-MM"
	SourceDocumentID uuid.UUID            `json:"source_document_id"`
	Version          int                  `json:"version"`
	ExtractedAt      time.Time            `json:"extracted_at"`
}

// MetricPoint is a (period, value) pair in a property's metric history.
type MetricPoint struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}
