package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/db/ent/schema/utils"
)

// CommitteeAlert requires a human decision before blocked actions resume.
// At most one PENDING alert may exist per (property_id, metric_type); the
// partial unique index below enforces this across writers, and the alerting
// layer turns a losing insert into a merge against the winner.
type CommitteeAlert struct{ ent.Schema }

func (CommitteeAlert) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "committee_alert"},
	}
}

func (CommitteeAlert) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("property_id", uuid.UUID{}),
		field.String("alert_type").NotEmpty().
			Validate(utils.EnumValidator(constants.AlertTypeValues()...)),
		field.String("metric_type").NotEmpty().
			Validate(utils.EnumValidator(constants.MetricTypeValues()...)),
		field.String("severity").
			Validate(utils.EnumValidator(constants.SeverityValues()...)),
		field.JSON("metric_snapshot", json.RawMessage{}),
		field.String("status").Default(string(constants.AlertStatusPending)).
			Validate(utils.EnumValidator(constants.AlertStatusValues()...)),
		field.Time("created_at").Default(time.Now),
		field.Time("resolved_at").Optional().Nillable(),
		field.String("resolved_by").Optional().Nillable(),
		field.String("resolution_notes").Optional().Nillable(),
	}
}

func (CommitteeAlert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("locks", WorkflowLock.Type),
	}
}

func (CommitteeAlert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("property_id", "metric_type", "status"),
		index.Fields("status", "created_at"),
		index.Fields("property_id", "metric_type").
			Unique().
			Annotations(entsql.IndexWhere("status = 'PENDING'")),
	}
}
