package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/db/ent/schema/utils"
)

// ExtractedMetric rows are append-only. Reprocessing a document inserts a new
// version per (property_id, metric_type, period); readers take MAX(version).
type ExtractedMetric struct{ ent.Schema }

func (ExtractedMetric) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_metric"},
	}
}

func (ExtractedMetric) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("property_id", uuid.UUID{}),
		field.String("metric_type").NotEmpty().
			Validate(utils.EnumValidator(constants.MetricTypeValues()...)),
		field.Float("value"),
		// Reporting period as "YYYY-MM"; lexicographic order is chronological.
		field.String("period").NotEmpty().MinLen(7).MaxLen(7),
		field.UUID("source_document_id", uuid.UUID{}),
		field.Int("version").Default(1),
		field.Time("extracted_at").Default(time.Now),
	}
}

func (ExtractedMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("property_id", "metric_type", "period", "version").Unique(),
		index.Fields("source_document_id"),
	}
}
