package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
)

// CommitteeAlert represents a governance alert for data transfer between layers.
type CommitteeAlert struct {
	ID              uuid.UUID             `json:"id"`
	PropertyID      uuid.UUID             `json:"property_id"`
	AlertType       constants.AlertType   `json:"alert_type"`
	MetricType      constants.MetricType  `json:"metric_type"`
	Severity        constants.Severity    `json:"severity"`
	MetricSnapshot  json.RawMessage       `json:"metric_snapshot,omitempty"`
	Status          constants.AlertStatus `json:"status"`
	CreatedAt       time.Time             `json:"created_at"`
	ResolvedAt      *time.Time            `json:"resolved_at,omitempty"`
	ResolvedBy      *string               `json:"resolved_by,omitempty"`
	ResolutionNotes *string               `json:"resolution_notes,omitempty"`
}

// MetricSnapshot captures the metric state that raised (or escalated) an alert.
// Stored on the alert as JSON so the committee sees what the detector saw.
type MetricSnapshot struct {
	MetricType constants.MetricType `json:"metric_type"`
	Value      float64              `json:"value"`
	Period     string               `json:"period"`
	Threshold  float64              `json:"threshold,omitempty"`
	ZScore     float64              `json:"z_score,omitempty"`
	CUSUM      float64              `json:"cusum,omitempty"`
	Confidence float64              `json:"confidence,omitempty"`
	Reason     string               `json:"reason,omitempty"`
}

// Encode marshals the snapshot for persistence. A snapshot is plain data;
// marshal failures are impossible short of memory corruption, so Encode
// swallows them and returns nil JSON.
func (s MetricSnapshot) Encode() json.RawMessage {
	b, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	return b
}

// DecodeSnapshot parses a stored metric snapshot.
func DecodeSnapshot(raw json.RawMessage) (MetricSnapshot, error) {
	var s MetricSnapshot
	err := json.Unmarshal(raw, &s)
	return s, err
}
