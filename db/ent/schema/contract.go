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

	"github.com/rcmkit/contract-analyzer/constants"
	"github.com/rcmkit/contract-analyzer/db/ent/schema/utils"
)

type Contract struct{ ent.Schema }

func (Contract) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contracts"},
	}
}

func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("original_filename").NotEmpty(),
		field.String("file_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Int64("file_size").NonNegative(),
		field.String("storage_key").NotEmpty(),
		field.String("status").
			Default(string(constants.StatusUploaded)).
			Validate(utils.EnumValidator(
				string(constants.StatusUploaded),
				string(constants.StatusProcessing),
				string(constants.StatusCompleted),
				string(constants.StatusFailed),
			)),
		// token identifying the in-flight analysis attempt; nil outside processing
		field.UUID("attempt_id", uuid.UUID{}).Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
		field.Time("processing_started_at").Optional().Nillable(),
		field.Time("processing_completed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE contract -> MANY analyses
		edge.To("analyses", Analysis.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Contract) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "uploaded_at"),
		index.Fields("uploaded_at"),
	}
}
