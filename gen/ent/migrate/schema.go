// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysesColumns holds the columns for the "analyses" table.
	AnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "raw_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON},
		{Name: "model_name", Type: field.TypeString},
		{Name: "prompt_tokens", Type: field.TypeInt},
		{Name: "completion_tokens", Type: field.TypeInt},
		{Name: "is_current", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// AnalysesTable holds the schema information for the "analyses" table.
	AnalysesTable = &schema.Table{
		Name:       "analyses",
		Columns:    AnalysesColumns,
		PrimaryKey: []*schema.Column{AnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analyses_contracts_analyses",
				Columns:    []*schema.Column{AnalysesColumns[8]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysis_contract_id_is_current",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[8], AnalysesColumns[6]},
			},
			{
				Name:    "analysis_contract_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[8], AnalysesColumns[7]},
			},
		},
	}
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "uploaded"},
		{Name: "attempt_id", Type: field.TypeUUID, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contract_status_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[6], ContractsColumns[9]},
			},
			{
				Name:    "contract_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[9]},
			},
		},
	}
	// ExtractedFieldsColumns holds the columns for the "extracted_fields" table.
	ExtractedFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString},
		{Name: "field_name", Type: field.TypeString},
		{Name: "field_value", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "field_type", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "analysis_id", Type: field.TypeUUID},
	}
	// ExtractedFieldsTable holds the schema information for the "extracted_fields" table.
	ExtractedFieldsTable = &schema.Table{
		Name:       "extracted_fields",
		Columns:    ExtractedFieldsColumns,
		PrimaryKey: []*schema.Column{ExtractedFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_fields_analyses_fields",
				Columns:    []*schema.Column{ExtractedFieldsColumns[6]},
				RefColumns: []*schema.Column{AnalysesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedfield_analysis_id_category_field_name",
				Unique:  true,
				Columns: []*schema.Column{ExtractedFieldsColumns[6], ExtractedFieldsColumns[1], ExtractedFieldsColumns[2]},
			},
			{
				Name:    "extractedfield_field_name",
				Unique:  false,
				Columns: []*schema.Column{ExtractedFieldsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysesTable,
		ContractsTable,
		ExtractedFieldsTable,
	}
)

func init() {
	AnalysesTable.ForeignKeys[0].RefTable = ContractsTable
	AnalysesTable.Annotation = &entsql.Annotation{
		Table: "analyses",
	}
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	ExtractedFieldsTable.ForeignKeys[0].RefTable = AnalysesTable
	ExtractedFieldsTable.Annotation = &entsql.Annotation{
		Table: "extracted_fields",
	}
}
