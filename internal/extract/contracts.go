package extract

import (
	"context"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
)

// Document is the raw uploaded artifact handed to an extractor.
type Document struct {
	DocumentID uuid.UUID
	PropertyID uuid.UUID
	BlobRef    string
	Content    []byte
}

// Payload is the normalized result of extraction: one reporting period and
// the metric values found for it, keyed by canonical metric type.
type Payload struct {
	Period     string                           `json:"period"`
	Metrics    map[constants.MetricType]float64 `json:"metrics"`
	Confidence float64                          `json:"confidence,omitempty"`
	Warnings   []string                         `json:"warnings,omitempty"`
}

// Extractor turns a document into a metrics payload. Failures that stem from
// the document content must be wrapped as extraction errors so the pipeline
// knows not to retry them.
type Extractor interface {
	Extract(ctx context.Context, doc Document) (*Payload, error)
}

// BlobStore resolves a job's blob reference to document bytes.
type BlobStore interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}
