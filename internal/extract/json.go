package extract

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/common"
)

// rawPayload is the wire shape before metric keys are canonicalized.
type rawPayload struct {
	Period     string             `json:"period"`
	Metrics    map[string]float64 `json:"metrics"`
	Confidence float64            `json:"confidence"`
}

// JSONExtractor parses documents that arrive as pre-structured JSON, the
// format the upload service emits after its own parsing stage. Loosely
// spelled metric names are canonicalized; names outside the taxonomy are
// recorded as warnings and dropped.
type JSONExtractor struct {
	schema map[string]any
}

func NewJSONExtractor() *JSONExtractor {
	return &JSONExtractor{schema: BuildMetricsPayloadSchema()}
}

func (e *JSONExtractor) Extract(_ context.Context, doc Document) (*Payload, error) {
	if len(doc.Content) == 0 {
		return nil, common.NewExtractionError("document is empty", nil)
	}
	if err := ValidateAgainstSchema(e.schema, doc.Content); err != nil {
		return nil, common.NewExtractionError("payload does not match schema", err)
	}
	var raw rawPayload
	if err := json.Unmarshal(doc.Content, &raw); err != nil {
		return nil, common.NewExtractionError("payload is not valid json", err)
	}

	out := &Payload{
		Period:     raw.Period,
		Metrics:    make(map[constants.MetricType]float64, len(raw.Metrics)),
		Confidence: raw.Confidence,
	}
	for name, value := range raw.Metrics {
		metricType, ok := constants.CanonicalMetricType(name)
		if !ok {
			out.Warnings = append(out.Warnings, fmt.Sprintf("unknown metric %q dropped", name))
			continue
		}
		out.Metrics[metricType] = value
	}
	if len(out.Metrics) == 0 {
		return nil, common.NewExtractionError("no recognized metrics in payload", nil)
	}
	return out, nil
}
