package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_SkipsAbsentFields(t *testing.T) {
	data, err := ParseAndNormalize([]byte(`{"vendor_information": {"vendor_name": "Acme"}}`))
	require.NoError(t, err)

	entries := Flatten(data)
	require.Len(t, entries, 1)
	assert.Equal(t, FieldEntry{
		Category:  "vendor_information",
		FieldName: "vendor_name",
		Value:     "Acme",
		Type:      "string",
	}, entries[0])
}

func TestFlatten_Deterministic(t *testing.T) {
	raw := []byte(`{
		"vendor_information": {"vendor_name": "Acme", "vendor_contact": "ops@acme.test"},
		"rcm_specific": {"denial_management": true, "expected_collection_rate": 96.5},
		"contract_terms": {"termination_clauses": ["for cause", "convenience with 90 days notice"]},
		"additional_notes": "n/a pages 12-14"
	}`)
	data, err := ParseAndNormalize(raw)
	require.NoError(t, err)

	first := Flatten(data)
	second := Flatten(data)
	assert.Equal(t, first, second)

	// categories appear in canonical order, fields sorted within a category
	var lastCat int
	seen := map[string]int{}
	for i, name := range CategoryOrder {
		seen[name] = i
	}
	seen["additional_notes"] = len(CategoryOrder)
	for _, e := range first {
		idx := seen[e.Category]
		assert.GreaterOrEqual(t, idx, lastCat)
		lastCat = idx
	}
}

func TestFlatten_ValueRendering(t *testing.T) {
	raw := []byte(`{
		"contract_terms": {"automatic_renewal": false},
		"rcm_specific": {"expected_collection_rate": 96.5},
		"service_details": {"services_included": ["billing", "coding"]}
	}`)
	data, err := ParseAndNormalize(raw)
	require.NoError(t, err)

	byName := map[string]FieldEntry{}
	for _, e := range Flatten(data) {
		byName[e.FieldName] = e
	}

	assert.Equal(t, "false", byName["automatic_renewal"].Value)
	assert.Equal(t, "boolean", byName["automatic_renewal"].Type)
	assert.Equal(t, "96.5", byName["expected_collection_rate"].Value)
	assert.Equal(t, "number", byName["expected_collection_rate"].Type)
	assert.Equal(t, `["billing","coding"]`, byName["services_included"].Value)
	assert.Equal(t, "list", byName["services_included"].Type)
}

func TestFlatten_PricingDottedNames(t *testing.T) {
	raw := []byte(`{"financial_terms": {"contract_value": {
		"monthly_fee": 2500,
		"percentage_rate": 4.9,
		"total_value": 30000,
		"is_variable": true,
		"currency": "USD"
	}}}`)
	data, err := ParseAndNormalize(raw)
	require.NoError(t, err)

	entries := Flatten(data)
	var names []string
	for _, e := range entries {
		assert.Equal(t, "financial_terms", e.Category)
		names = append(names, e.FieldName)
	}
	assert.Equal(t, []string{
		"contract_value.currency",
		"contract_value.is_variable",
		"contract_value.monthly_fee",
		"contract_value.percentage_rate",
		"contract_value.total_value",
	}, names)
}

func TestFlatten_AdditionalNotesLast(t *testing.T) {
	raw := []byte(`{"vendor_information": {"vendor_name": "Acme"}, "additional_notes": "redlined draft"}`)
	data, err := ParseAndNormalize(raw)
	require.NoError(t, err)

	entries := Flatten(data)
	require.Len(t, entries, 2)
	last := entries[len(entries)-1]
	assert.Equal(t, "additional_notes", last.Category)
	assert.Equal(t, "additional_notes", last.FieldName)
	assert.Equal(t, "redlined draft", last.Value)
}
