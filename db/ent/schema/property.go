package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/db/ent/schema/utils"
)

type Property struct{ ent.Schema }

func (Property) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "properties"},
	}
}

func (Property) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("property_class").Default(string(constants.ClassStabilized)).
			Validate(utils.EnumValidator(constants.PropertyClassValues()...)),
		field.Time("created_at").Default(time.Now),
	}
}
