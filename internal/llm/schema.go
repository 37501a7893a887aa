package llm

// BuildContractJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the six-category contract extraction shape. It is
// embedded in the prompt and used locally to gate model output before
// normalization. Categories are optional and every field is nullable:
// partial extraction is an expected outcome, not an error.
func BuildContractJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vendor_information":   categoryProp("vendor_information"),
			"financial_terms":      categoryProp("financial_terms"),
			"service_details":      categoryProp("service_details"),
			"contract_terms":       categoryProp("contract_terms"),
			"compliance_and_legal": categoryProp("compliance_and_legal"),
			"rcm_specific":         categoryProp("rcm_specific"),
			"additional_notes":     nullableProp("string"),
		},
	}
}

func categoryProp(name string) map[string]any {
	props := map[string]any{}
	for _, f := range CategoryFields[name] {
		props[f] = anyFieldProp()
	}
	if name == "financial_terms" {
		props["contract_value"] = contractValueProp()
	}
	return map[string]any{
		"type":       []string{"object", "null"},
		"properties": props,
	}
}

// anyFieldProp admits the canonical scalar/list union plus null. Objects are
// admitted too: models sometimes volunteer nested detail for a known field,
// and normalization keeps that queryable as compact JSON text rather than
// failing the attempt.
func anyFieldProp() map[string]any {
	return map[string]any{
		"type": []string{"string", "number", "boolean", "array", "object", "null"},
		"items": map[string]any{
			"type": []string{"string", "number", "boolean"},
		},
	}
}

// contractValueProp admits the pricing-summary shape, the legacy
// single-amount shape, a bare number, and a textual amount; normalization
// reconciles them afterwards.
func contractValueProp() map[string]any {
	return map[string]any{
		"type": []string{"object", "number", "string", "null"},
		"properties": map[string]any{
			"monthly_fee":       nullableProp("number"),
			"percentage_rate":   nullableProp("number"),
			"per_encounter_fee": nullableProp("number"),
			"total_value":       nullableProp("number"),
			"is_variable":       nullableProp("boolean"),
			"currency":          nullableProp("string"),
			// legacy shape
			"amount":      nullableProp("number"),
			"is_estimate": nullableProp("boolean"),
		},
	}
}

func nullableProp(typ string) map[string]any {
	return map[string]any{"type": []string{typ, "null"}}
}
