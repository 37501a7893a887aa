package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractedField is one flattened (category, field, value) row derived from
// an analysis's structured data, stored for querying without re-parsing JSON.
type ExtractedField struct {
	ID         uuid.UUID `json:"id"`
	AnalysisID uuid.UUID `json:"analysis_id"`
	Category   string    `json:"category"`
	FieldName  string    `json:"field_name"`
	FieldValue string    `json:"field_value"`
	FieldType  string    `json:"field_type"` // string, number, boolean, list, object
	CreatedAt  time.Time `json:"created_at"`
}
