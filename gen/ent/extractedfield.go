// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rcmkit/contract-analyzer/gen/ent/analysis"
	"github.com/rcmkit/contract-analyzer/gen/ent/extractedfield"
)

// ExtractedField is the model entity for the ExtractedField schema.
type ExtractedField struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AnalysisID holds the value of the "analysis_id" field.
	AnalysisID uuid.UUID `json:"analysis_id,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// FieldValue holds the value of the "field_value" field.
	FieldValue string `json:"field_value,omitempty"`
	// FieldType holds the value of the "field_type" field.
	FieldType string `json:"field_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedFieldQuery when eager-loading is set.
	Edges        ExtractedFieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedFieldEdges holds the relations/edges for other nodes in the graph.
type ExtractedFieldEdges struct {
	// Analysis holds the value of the analysis edge.
	Analysis *Analysis `json:"analysis,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnalysisOrErr returns the Analysis value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedFieldEdges) AnalysisOrErr() (*Analysis, error) {
	if e.Analysis != nil {
		return e.Analysis, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysis.Label}
	}
	return nil, &NotLoadedError{edge: "analysis"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedfield.FieldCategory, extractedfield.FieldFieldName, extractedfield.FieldFieldValue, extractedfield.FieldFieldType:
			values[i] = new(sql.NullString)
		case extractedfield.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case extractedfield.FieldID, extractedfield.FieldAnalysisID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedField fields.
func (_m *ExtractedField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedfield.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractedfield.FieldAnalysisID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_id", values[i])
			} else if value != nil {
				_m.AnalysisID = *value
			}
		case extractedfield.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case extractedfield.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case extractedfield.FieldFieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_value", values[i])
			} else if value.Valid {
				_m.FieldValue = value.String
			}
		case extractedfield.FieldFieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_type", values[i])
			} else if value.Valid {
				_m.FieldType = value.String
			}
		case extractedfield.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedField.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedField) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnalysis queries the "analysis" edge of the ExtractedField entity.
func (_m *ExtractedField) QueryAnalysis() *AnalysisQuery {
	return NewExtractedFieldClient(_m.config).QueryAnalysis(_m)
}

// Update returns a builder for updating this ExtractedField.
// Note that you need to call ExtractedField.Unwrap() before calling this method if this ExtractedField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedField) Update() *ExtractedFieldUpdateOne {
	return NewExtractedFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedField) Unwrap() *ExtractedField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedField) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("analysis_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisID))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	builder.WriteString("field_value=")
	builder.WriteString(_m.FieldValue)
	builder.WriteString(", ")
	builder.WriteString("field_type=")
	builder.WriteString(_m.FieldType)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedFields is a parsable slice of ExtractedField.
type ExtractedFields []*ExtractedField
