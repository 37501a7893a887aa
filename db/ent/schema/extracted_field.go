package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/rcmkit/contract-analyzer/db/ent/schema/utils"
)

type ExtractedField struct{ ent.Schema }

func (ExtractedField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_fields"},
	}
}

func (ExtractedField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("analysis_id", uuid.UUID{}),
		field.String("category").NotEmpty(),
		field.String("field_name").NotEmpty(),
		field.String("field_value").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("field_type").NotEmpty().
			Validate(utils.EnumValidator("string", "number", "boolean", "list", "object")),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ExtractedField) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY fields -> ONE analysis
		edge.From("analysis", Analysis.Type).
			Ref("fields").
			Field("analysis_id").
			Required().
			Unique(),
	}
}

func (ExtractedField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("analysis_id", "category", "field_name").Unique(),
		index.Fields("field_name"),
	}
}
