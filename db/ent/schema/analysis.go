package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Analysis struct{ ent.Schema }

func (Analysis) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analyses"},
	}
}

func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("contract_id", uuid.UUID{}),
		field.String("raw_text").Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_json", json.RawMessage{}).Immutable(),
		field.String("model_name").NotEmpty().Immutable(),
		field.Int("prompt_tokens").NonNegative().Immutable(),
		field.Int("completion_tokens").NonNegative().Immutable(),
		// exactly one current analysis per contract; prior rows keep false
		field.Bool("is_current").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Analysis) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY analyses -> ONE contract (FK: analyses.contract_id)
		edge.From("contract", Contract.Type).
			Ref("analyses").
			Field("contract_id").
			Required().
			Unique(),
		// ONE analysis -> MANY extracted fields
		edge.To("fields", ExtractedField.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Analysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id", "is_current"),
		index.Fields("contract_id", "created_at"),
	}
}
