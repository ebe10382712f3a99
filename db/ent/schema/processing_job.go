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

type ProcessingJob struct{ ent.Schema }

func (ProcessingJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_job"},
	}
}

func (ProcessingJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("property_id", uuid.UUID{}),
		field.String("blob_ref").NotEmpty(),
		field.String("status").Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatusValues()...)),
		field.Time("enqueued_at").Default(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Int("attempt_count").Default(0),
		field.String("last_error").Optional().Nillable(),
	}
}

func (ProcessingJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("property_id", "status"),
		index.Fields("document_id", "enqueued_at"),
	}
}
