package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SchemaError reports a failure to interpret raw model output as the
// canonical contract-data schema. It is terminal for the attempt.
type SchemaError struct {
	Reason string
	Err    error
}

// SchemaError reasons.
const (
	ReasonMalformedOutput = "malformed_output" // response is not parseable JSON
	ReasonInvalidShape    = "invalid_shape"    // JSON parsed but violates the structural schema
)

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schema error (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("schema error (%s)", e.Reason)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// ValueKind discriminates the canonical field value union.
type ValueKind int

const (
	KindAbsent ValueKind = iota // explicit "not found" marker
	KindString
	KindNumber
	KindBool
	KindList    // ordered list of strings
	KindPricing // contract_value pricing summary
)

// Value is a single canonical field value. The zero Value is absent.
type Value struct {
	kind    ValueKind
	str     string
	num     float64
	boolean bool
	list    []string
	pricing *PricingSummary
}

// PricingSummary is the canonical monetary shape for financial_terms.contract_value.
// All sub-fields are optional.
type PricingSummary struct {
	MonthlyFee      *float64 `json:"monthly_fee,omitempty"`
	PercentageRate  *float64 `json:"percentage_rate,omitempty"`
	PerEncounterFee *float64 `json:"per_encounter_fee,omitempty"`
	TotalValue      *float64 `json:"total_value,omitempty"`
	IsVariable      *bool    `json:"is_variable,omitempty"`
	Currency        string   `json:"currency,omitempty"`
}

func Absent() Value                  { return Value{} }
func StringValue(s string) Value     { return Value{kind: KindString, str: s} }
func NumberValue(n float64) Value    { return Value{kind: KindNumber, num: n} }
func BoolValue(b bool) Value         { return Value{kind: KindBool, boolean: b} }
func ListValue(items []string) Value { return Value{kind: KindList, list: items} }
func PricingValue(p PricingSummary) Value {
	return Value{kind: KindPricing, pricing: &p}
}

func (v Value) Kind() ValueKind          { return v.kind }
func (v Value) IsAbsent() bool           { return v.kind == KindAbsent }
func (v Value) String() string           { return v.str }
func (v Value) Number() float64          { return v.num }
func (v Value) Bool() bool               { return v.boolean }
func (v Value) List() []string           { return v.list }
func (v Value) Pricing() *PricingSummary { return v.pricing }

// MarshalJSON renders absent values as explicit null so consumers can tell
// "analyzed, not present in contract" from "not analyzed".
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindAbsent:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.boolean)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindPricing:
		return json.Marshal(v.pricing)
	default:
		return nil, fmt.Errorf("unknown value kind %d", v.kind)
	}
}

// UnmarshalJSON classifies arbitrary JSON back into the canonical union.
// Objects are interpreted as pricing summaries since that is the only nested
// shape the schema permits.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = CoerceValue(raw)
	return nil
}

// CoerceValue maps a decoded JSON value onto the canonical union.
func CoerceValue(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Absent()
	case string:
		return StringValue(t)
	case float64:
		return NumberValue(t)
	case bool:
		return BoolValue(t)
	case []any:
		items := make([]string, 0, len(t))
		for _, it := range t {
			items = append(items, stringify(it))
		}
		return ListValue(items)
	case map[string]any:
		return coercePricing(t)
	default:
		return StringValue(fmt.Sprintf("%v", t))
	}
}

// coercePricing normalizes a monetary object. The legacy single-amount shape
// {amount, currency, is_estimate} is coerced to the pricing-summary shape so
// downstream code only ever sees one representation.
func coercePricing(m map[string]any) Value {
	p := PricingSummary{}
	if _, legacy := m["amount"]; legacy {
		p.TotalValue = numberField(m, "amount")
		p.IsVariable = boolField(m, "is_estimate")
		if c, ok := m["currency"].(string); ok {
			p.Currency = c
		}
		return PricingValue(p)
	}
	p.MonthlyFee = numberField(m, "monthly_fee")
	p.PercentageRate = numberField(m, "percentage_rate")
	p.PerEncounterFee = numberField(m, "per_encounter_fee")
	p.TotalValue = numberField(m, "total_value")
	p.IsVariable = boolField(m, "is_variable")
	if c, ok := m["currency"].(string); ok {
		p.Currency = c
	}
	return PricingValue(p)
}

func numberField(m map[string]any, key string) *float64 {
	switch t := m[key].(type) {
	case float64:
		return &t
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return &f
		}
	}
	return nil
}

func boolField(m map[string]any, key string) *bool {
	if b, ok := m[key].(bool); ok {
		return &b
	}
	return nil
}

func stringify(raw any) string {
	switch t := raw.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(raw)
		if err != nil {
			return fmt.Sprintf("%v", raw)
		}
		return string(b)
	}
}

// Category is a mapping of named fields to canonical values.
type Category map[string]Value

// StructuredData is the canonical six-category contract extraction schema.
type StructuredData struct {
	VendorInformation  Category `json:"vendor_information"`
	FinancialTerms     Category `json:"financial_terms"`
	ServiceDetails     Category `json:"service_details"`
	ContractTerms      Category `json:"contract_terms"`
	ComplianceAndLegal Category `json:"compliance_and_legal"`
	RCMSpecific        Category `json:"rcm_specific"`
	AdditionalNotes    Value    `json:"additional_notes"`
}

// CategoryOrder fixes the canonical ordering of categories for flattening
// and presentation.
var CategoryOrder = []string{
	"vendor_information",
	"financial_terms",
	"service_details",
	"contract_terms",
	"compliance_and_legal",
	"rcm_specific",
}

// CategoryFields lists the known field names per category. Normalization
// fills every known field so absent values surface as explicit nulls.
var CategoryFields = map[string][]string{
	"vendor_information": {
		"vendor_name", "vendor_contact", "vendor_address", "vendor_tax_id",
	},
	"financial_terms": {
		"contract_value", "payment_terms", "payment_schedule", "pricing_model",
		"percentage_of_collections", "late_payment_penalties",
	},
	"service_details": {
		"service_scope", "services_included", "services_excluded",
		"performance_metrics", "service_level_agreements",
	},
	"contract_terms": {
		"start_date", "end_date", "contract_duration", "automatic_renewal",
		"renewal_terms", "termination_clauses", "notice_period",
	},
	"compliance_and_legal": {
		"hipaa_compliance_mentioned", "hipaa_requirements", "data_security_requirements",
		"audit_rights", "liability_limitations", "indemnification", "insurance_requirements",
	},
	"rcm_specific": {
		"billing_services", "coding_services", "denial_management", "ar_follow_up",
		"patient_collections", "expected_collection_rate", "reporting_frequency",
		"technology_platform",
	},
}

// Category returns the named category map, or nil for unknown names.
func (d *StructuredData) Category(name string) Category {
	switch name {
	case "vendor_information":
		return d.VendorInformation
	case "financial_terms":
		return d.FinancialTerms
	case "service_details":
		return d.ServiceDetails
	case "contract_terms":
		return d.ContractTerms
	case "compliance_and_legal":
		return d.ComplianceAndLegal
	case "rcm_specific":
		return d.RCMSpecific
	default:
		return nil
	}
}

func (d *StructuredData) setCategory(name string, c Category) {
	switch name {
	case "vendor_information":
		d.VendorInformation = c
	case "financial_terms":
		d.FinancialTerms = c
	case "service_details":
		d.ServiceDetails = c
	case "contract_terms":
		d.ContractTerms = c
	case "compliance_and_legal":
		d.ComplianceAndLegal = c
	case "rcm_specific":
		d.RCMSpecific = c
	}
}
