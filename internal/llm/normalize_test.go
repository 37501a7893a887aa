package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndNormalize_PlainJSON(t *testing.T) {
	raw := []byte(`{
		"vendor_information": {"vendor_name": "Acme RCM Services", "vendor_tax_id": null},
		"financial_terms": {"percentage_of_collections": 5.5},
		"contract_terms": {"automatic_renewal": true},
		"additional_notes": "Signed copy only."
	}`)

	data, err := ParseAndNormalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "Acme RCM Services", data.VendorInformation["vendor_name"].String())
	assert.True(t, data.VendorInformation["vendor_tax_id"].IsAbsent())
	assert.Equal(t, 5.5, data.FinancialTerms["percentage_of_collections"].Number())
	assert.True(t, data.ContractTerms["automatic_renewal"].Bool())
	assert.Equal(t, "Signed copy only.", data.AdditionalNotes.String())

	// categories the model omitted entirely still carry every known field
	require.NotNil(t, data.RCMSpecific)
	assert.True(t, data.RCMSpecific["billing_services"].IsAbsent())
	assert.Len(t, data.RCMSpecific, len(CategoryFields["rcm_specific"]))
}

func TestParseAndNormalize_MarkdownFence(t *testing.T) {
	raw := []byte("Here is the extracted data:\n```json\n{\"vendor_information\": {\"vendor_name\": \"MedBill Inc\"}}\n```\nLet me know if you need anything else.")

	data, err := ParseAndNormalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "MedBill Inc", data.VendorInformation["vendor_name"].String())
}

func TestParseAndNormalize_BareFence(t *testing.T) {
	raw := []byte("```\n{\"service_details\": {\"service_scope\": \"full cycle\"}}\n```")

	data, err := ParseAndNormalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "full cycle", data.ServiceDetails["service_scope"].String())
}

func TestParseAndNormalize_ProseAroundBraces(t *testing.T) {
	raw := []byte(`Sure! {"contract_terms": {"notice_period": "90 days"}} Hope that helps.`)

	data, err := ParseAndNormalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "90 days", data.ContractTerms["notice_period"].String())
}

func TestParseAndNormalize_MalformedOutput(t *testing.T) {
	_, err := ParseAndNormalize([]byte("I could not find any structured data in this document."))

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, ReasonMalformedOutput, schemaErr.Reason)
}

func TestParseAndNormalize_InvalidShape(t *testing.T) {
	// vendor_information must be an object or null, never an array
	_, err := ParseAndNormalize([]byte(`{"vendor_information": ["Acme"]}`))

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, ReasonInvalidShape, schemaErr.Reason)
}

func TestParseAndNormalize_EmptyObjectIsSuccess(t *testing.T) {
	data, err := ParseAndNormalize([]byte(`{}`))
	require.NoError(t, err)

	for _, name := range CategoryOrder {
		cat := data.Category(name)
		require.NotNil(t, cat, name)
		for field, v := range cat {
			assert.True(t, v.IsAbsent(), "%s.%s", name, field)
		}
	}
	assert.True(t, data.AdditionalNotes.IsAbsent())
}

func TestParseAndNormalize_LegacyContractValue(t *testing.T) {
	legacy := []byte(`{"financial_terms": {"contract_value": {"amount": 120000, "currency": "USD", "is_estimate": true}}}`)
	summary := []byte(`{"financial_terms": {"contract_value": {"total_value": 120000, "currency": "USD", "is_variable": true}}}`)

	fromLegacy, err := ParseAndNormalize(legacy)
	require.NoError(t, err)
	fromSummary, err := ParseAndNormalize(summary)
	require.NoError(t, err)

	// the legacy single-amount shape and the pricing-summary shape converge
	assert.Equal(t,
		fromSummary.FinancialTerms["contract_value"].Pricing(),
		fromLegacy.FinancialTerms["contract_value"].Pricing(),
	)

	p := fromLegacy.FinancialTerms["contract_value"].Pricing()
	require.NotNil(t, p)
	require.NotNil(t, p.TotalValue)
	assert.Equal(t, 120000.0, *p.TotalValue)
	assert.Equal(t, "USD", p.Currency)
	require.NotNil(t, p.IsVariable)
	assert.True(t, *p.IsVariable)
}

func TestParseAndNormalize_BareNumberContractValue(t *testing.T) {
	data, err := ParseAndNormalize([]byte(`{"financial_terms": {"contract_value": 50000}}`))
	require.NoError(t, err)

	p := data.FinancialTerms["contract_value"].Pricing()
	require.NotNil(t, p)
	require.NotNil(t, p.TotalValue)
	assert.Equal(t, 50000.0, *p.TotalValue)
	assert.Empty(t, p.Currency)
}

func TestParseAndNormalize_StringContractValue(t *testing.T) {
	data, err := ParseAndNormalize([]byte(`{"financial_terms": {"contract_value": "$120,000 annually"}}`))
	require.NoError(t, err)

	v := data.FinancialTerms["contract_value"]
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, "$120,000 annually", v.String())
}

func TestParseAndNormalize_UnexpectedNestedObject(t *testing.T) {
	data, err := ParseAndNormalize([]byte(`{"rcm_specific": {"technology_platform": {"name": "Epic", "hosted": true}}}`))
	require.NoError(t, err)

	v := data.RCMSpecific["technology_platform"]
	assert.Equal(t, KindString, v.Kind())
	assert.JSONEq(t, `{"name":"Epic","hosted":true}`, v.String())
}

func TestParseAndNormalize_BlankNotesAreAbsent(t *testing.T) {
	data, err := ParseAndNormalize([]byte(`{"additional_notes": "   "}`))
	require.NoError(t, err)
	assert.True(t, data.AdditionalNotes.IsAbsent())
}

func TestStructuredData_AbsentMarshalsAsNull(t *testing.T) {
	data, err := ParseAndNormalize([]byte(`{"vendor_information": {"vendor_name": "Acme"}}`))
	require.NoError(t, err)

	out, err := json.Marshal(data)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	vendor, ok := doc["vendor_information"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Acme", vendor["vendor_name"])
	// absent fields persist as explicit nulls, not missing keys
	contact, present := vendor["vendor_contact"]
	assert.True(t, present)
	assert.Nil(t, contact)
}
