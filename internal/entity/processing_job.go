package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
)

// ProcessingJob represents a queued document-processing job for data transfer
// between layers.
type ProcessingJob struct {
	ID           uuid.UUID           `json:"id"`
	DocumentID   uuid.UUID           `json:"document_id"`
	PropertyID   uuid.UUID           `json:"property_id"`
	BlobRef      string              `json:"blob_ref"`
	Status       constants.JobStatus `json:"status"`
	EnqueuedAt   time.Time           `json:"enqueued_at"`
	StartedAt    *time.Time          `json:"started_at,omitempty"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
	AttemptCount int                 `json:"attempt_count"`
	LastError    *string             `json:"last_error,omitempty"`
}
