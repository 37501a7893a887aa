package llm

import (
	"encoding/json"
	"strings"
)

// ParseAndNormalize interprets raw model output as the canonical contract
// schema. A response that cannot be parsed as JSON is a SchemaError
// (malformed_output); a structurally valid but incomplete response is a
// success with missing categories represented as absent values.
func ParseAndNormalize(raw []byte) (*StructuredData, error) {
	payload := salvageJSON(raw)

	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, &SchemaError{Reason: ReasonMalformedOutput, Err: err}
	}

	if err := ValidateJSONAgainstSchema(BuildContractJSONSchema(), payload); err != nil {
		return nil, &SchemaError{Reason: ReasonInvalidShape, Err: err}
	}

	out := &StructuredData{}
	for _, name := range CategoryOrder {
		out.setCategory(name, normalizeCategory(name, doc[name]))
	}

	switch notes := doc["additional_notes"].(type) {
	case string:
		if strings.TrimSpace(notes) != "" {
			out.AdditionalNotes = StringValue(notes)
		}
	default:
		out.AdditionalNotes = Absent()
	}
	return out, nil
}

// normalizeCategory fills every known field of the category, marking fields
// the model omitted (or answered null) as absent. Unknown extra fields the
// model volunteered are kept.
func normalizeCategory(name string, raw any) Category {
	cat := Category{}
	for _, f := range CategoryFields[name] {
		cat[f] = Absent()
	}

	src, ok := raw.(map[string]any)
	if !ok {
		return cat
	}
	for field, val := range src {
		cat[field] = normalizeField(name, field, val)
	}
	return cat
}

func normalizeField(category, field string, raw any) Value {
	// contract_value is the only field with a nested object shape; both the
	// legacy single-amount form and the pricing-summary form land here.
	if category == "financial_terms" && field == "contract_value" {
		if m, ok := raw.(map[string]any); ok {
			return coercePricing(m)
		}
		// a bare number is treated as a total value in the default currency
		if n, ok := raw.(float64); ok {
			return PricingValue(PricingSummary{TotalValue: &n})
		}
		// a textual amount ("$120,000 annually") stays as-is for the reader
		if s, ok := raw.(string); ok {
			return StringValue(s)
		}
		return Absent()
	}

	switch t := raw.(type) {
	case map[string]any:
		// unexpected nesting: keep it queryable as compact JSON text
		b, err := json.Marshal(t)
		if err != nil {
			return Absent()
		}
		return StringValue(string(b))
	default:
		return CoerceValue(raw)
	}
}

// salvageJSON strips markdown code fences and leading/trailing prose around
// a JSON object, which some model responses wrap despite instructions.
func salvageJSON(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))

	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
		return []byte(strings.TrimSpace(s))
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
		return []byte(strings.TrimSpace(s))
	}

	// fall back to the outermost object braces
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return []byte(s[start : end+1])
	}
	return []byte(s)
}
