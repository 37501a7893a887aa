package llm

import (
	"encoding/json"
	"sort"
	"strconv"
)

// FieldEntry is one flattened (category, field, value) triple. The set of
// entries for a given StructuredData is a pure function of that data:
// re-flattening yields the same entries in the same order.
type FieldEntry struct {
	Category  string
	FieldName string
	Value     string
	Type      string // string, number, boolean, list, object
}

// Flatten emits one entry per non-absent field, categories in canonical
// order and field names sorted within each category. Nested pricing
// summaries flatten to dotted field names.
func Flatten(data *StructuredData) []FieldEntry {
	var out []FieldEntry
	for _, name := range CategoryOrder {
		cat := data.Category(name)
		fields := make([]string, 0, len(cat))
		for f := range cat {
			fields = append(fields, f)
		}
		sort.Strings(fields)

		for _, f := range fields {
			out = append(out, flattenValue(name, f, cat[f])...)
		}
	}
	if !data.AdditionalNotes.IsAbsent() {
		out = append(out, FieldEntry{
			Category:  "additional_notes",
			FieldName: "additional_notes",
			Value:     data.AdditionalNotes.String(),
			Type:      "string",
		})
	}
	return out
}

func flattenValue(category, field string, v Value) []FieldEntry {
	switch v.Kind() {
	case KindAbsent:
		return nil
	case KindString:
		return []FieldEntry{{category, field, v.String(), "string"}}
	case KindNumber:
		return []FieldEntry{{category, field, formatNumber(v.Number()), "number"}}
	case KindBool:
		return []FieldEntry{{category, field, strconv.FormatBool(v.Bool()), "boolean"}}
	case KindList:
		b, err := json.Marshal(v.List())
		if err != nil {
			return nil
		}
		return []FieldEntry{{category, field, string(b), "list"}}
	case KindPricing:
		return flattenPricing(category, field, v.Pricing())
	default:
		return nil
	}
}

// flattenPricing emits one dotted entry per populated sub-field, in a fixed
// sub-field order.
func flattenPricing(category, field string, p *PricingSummary) []FieldEntry {
	if p == nil {
		return nil
	}
	var out []FieldEntry
	add := func(sub string, val *float64) {
		if val != nil {
			out = append(out, FieldEntry{category, field + "." + sub, formatNumber(*val), "number"})
		}
	}
	if p.Currency != "" {
		out = append(out, FieldEntry{category, field + ".currency", p.Currency, "string"})
	}
	if p.IsVariable != nil {
		out = append(out, FieldEntry{category, field + ".is_variable", strconv.FormatBool(*p.IsVariable), "boolean"})
	}
	add("monthly_fee", p.MonthlyFee)
	add("per_encounter_fee", p.PerEncounterFee)
	add("percentage_rate", p.PercentageRate)
	add("total_value", p.TotalValue)
	return out
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
