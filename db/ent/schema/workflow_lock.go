package schema

import (
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

// WorkflowLock blocks business actions on a property while LOCKED. A lock is
// created in the same transaction as its owning alert, never on its own.
type WorkflowLock struct{ ent.Schema }

func (WorkflowLock) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "workflow_lock"},
	}
}

func (WorkflowLock) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("property_id", uuid.UUID{}),
		field.UUID("alert_id", uuid.UUID{}),
		field.String("lock_type").NotEmpty().
			Validate(utils.EnumValidator(constants.LockTypeValues()...)),
		field.JSON("blocked_actions", []string{}),
		field.String("status").Default(string(constants.LockStatusLocked)).
			Validate(utils.EnumValidator(constants.LockStatusValues()...)),
		field.Time("locked_at").Default(time.Now),
		field.Time("unlocked_at").Optional().Nillable(),
	}
}

func (WorkflowLock) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("alert", CommitteeAlert.Type).
			Ref("locks").
			Field("alert_id").
			Unique().
			Required(),
	}
}

func (WorkflowLock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("property_id", "status"),
		index.Fields("alert_id"),
		index.Fields("status", "locked_at"),
	}
}
