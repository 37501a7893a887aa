// Code generated by ent, DO NOT EDIT.

package extractedfield

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/rcmkit/contract-analyzer/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldID, id))
}

// AnalysisID applies equality check predicate on the "analysis_id" field. It's identical to AnalysisIDEQ.
func AnalysisID(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldAnalysisID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldCategory, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldFieldName, v))
}

// FieldValue applies equality check predicate on the "field_value" field. It's identical to FieldValueEQ.
func FieldValue(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldFieldValue, v))
}

// FieldType applies equality check predicate on the "field_type" field. It's identical to FieldTypeEQ.
func FieldType(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldFieldType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldCreatedAt, v))
}

// AnalysisIDEQ applies the EQ predicate on the "analysis_id" field.
func AnalysisIDEQ(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldAnalysisID, v))
}

// AnalysisIDNEQ applies the NEQ predicate on the "analysis_id" field.
func AnalysisIDNEQ(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldAnalysisID, v))
}

// AnalysisIDIn applies the In predicate on the "analysis_id" field.
func AnalysisIDIn(vs ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldAnalysisID, vs...))
}

// AnalysisIDNotIn applies the NotIn predicate on the "analysis_id" field.
func AnalysisIDNotIn(vs ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldAnalysisID, vs...))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContainsFold(FieldCategory, v))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContainsFold(FieldFieldName, v))
}

// FieldValueEQ applies the EQ predicate on the "field_value" field.
func FieldValueEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldFieldValue, v))
}

// FieldValueNEQ applies the NEQ predicate on the "field_value" field.
func FieldValueNEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldFieldValue, v))
}

// FieldValueIn applies the In predicate on the "field_value" field.
func FieldValueIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldFieldValue, vs...))
}

// FieldValueNotIn applies the NotIn predicate on the "field_value" field.
func FieldValueNotIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldFieldValue, vs...))
}

// FieldValueGT applies the GT predicate on the "field_value" field.
func FieldValueGT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldFieldValue, v))
}

// FieldValueGTE applies the GTE predicate on the "field_value" field.
func FieldValueGTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldFieldValue, v))
}

// FieldValueLT applies the LT predicate on the "field_value" field.
func FieldValueLT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldFieldValue, v))
}

// FieldValueLTE applies the LTE predicate on the "field_value" field.
func FieldValueLTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldFieldValue, v))
}

// FieldValueContains applies the Contains predicate on the "field_value" field.
func FieldValueContains(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContains(FieldFieldValue, v))
}

// FieldValueHasPrefix applies the HasPrefix predicate on the "field_value" field.
func FieldValueHasPrefix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasPrefix(FieldFieldValue, v))
}

// FieldValueHasSuffix applies the HasSuffix predicate on the "field_value" field.
func FieldValueHasSuffix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasSuffix(FieldFieldValue, v))
}

// FieldValueEqualFold applies the EqualFold predicate on the "field_value" field.
func FieldValueEqualFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEqualFold(FieldFieldValue, v))
}

// FieldValueContainsFold applies the ContainsFold predicate on the "field_value" field.
func FieldValueContainsFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContainsFold(FieldFieldValue, v))
}

// FieldTypeEQ applies the EQ predicate on the "field_type" field.
func FieldTypeEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldFieldType, v))
}

// FieldTypeNEQ applies the NEQ predicate on the "field_type" field.
func FieldTypeNEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldFieldType, v))
}

// FieldTypeIn applies the In predicate on the "field_type" field.
func FieldTypeIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldFieldType, vs...))
}

// FieldTypeNotIn applies the NotIn predicate on the "field_type" field.
func FieldTypeNotIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldFieldType, vs...))
}

// FieldTypeGT applies the GT predicate on the "field_type" field.
func FieldTypeGT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldFieldType, v))
}

// FieldTypeGTE applies the GTE predicate on the "field_type" field.
func FieldTypeGTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldFieldType, v))
}

// FieldTypeLT applies the LT predicate on the "field_type" field.
func FieldTypeLT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldFieldType, v))
}

// FieldTypeLTE applies the LTE predicate on the "field_type" field.
func FieldTypeLTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldFieldType, v))
}

// FieldTypeContains applies the Contains predicate on the "field_type" field.
func FieldTypeContains(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContains(FieldFieldType, v))
}

// FieldTypeHasPrefix applies the HasPrefix predicate on the "field_type" field.
func FieldTypeHasPrefix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasPrefix(FieldFieldType, v))
}

// FieldTypeHasSuffix applies the HasSuffix predicate on the "field_type" field.
func FieldTypeHasSuffix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasSuffix(FieldFieldType, v))
}

// FieldTypeEqualFold applies the EqualFold predicate on the "field_type" field.
func FieldTypeEqualFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEqualFold(FieldFieldType, v))
}

// FieldTypeContainsFold applies the ContainsFold predicate on the "field_type" field.
func FieldTypeContainsFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContainsFold(FieldFieldType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAnalysis applies the HasEdge predicate on the "analysis" edge.
func HasAnalysis() predicate.ExtractedField {
	return predicate.ExtractedField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnalysisTable, AnalysisColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysisWith applies the HasEdge predicate on the "analysis" edge with a given conditions (other predicates).
func HasAnalysisWith(preds ...predicate.Analysis) predicate.ExtractedField {
	return predicate.ExtractedField(func(s *sql.Selector) {
		step := newAnalysisStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.NotPredicates(p))
}
