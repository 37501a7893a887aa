package llm

import (
	"encoding/json"
	"strings"
)

// SystemPrompt frames the model as an RCM contract analyst. The extraction
// categories here must stay in lockstep with CategoryFields.
const SystemPrompt = `You are an expert contract analyst specializing in Revenue Cycle Management (RCM) contracts for healthcare providers. Your task is to extract structured information from contract documents with high accuracy.

Extract information in the following categories:
1. Vendor Information
2. Financial Terms
3. Service Details
4. Contract Terms and Duration
5. Compliance and Legal Terms
6. RCM-Specific Terms

Return your response as a JSON object with the exact structure provided in the schema. If information is not found, use null for the value. Be precise and quote directly from the document when possible.`

// BuildAnalysisPrompt renders the user prompt for a full contract analysis.
func BuildAnalysisPrompt(documentText string) string {
	var b strings.Builder
	b.WriteString("Please analyze the following RCM contract and extract key information.\n\n")
	b.WriteString("DOCUMENT TEXT:\n")
	b.WriteString(documentText)
	b.WriteString("\n\nEXTRACTION SCHEMA:\n")
	b.WriteString(mustJSON(BuildContractJSONSchema()))
	b.WriteString(`

IMPORTANT:
- Extract dates in YYYY-MM-DD format
- Extract numbers without currency symbols or formatting
- Be precise and quote directly from the document when possible
- If a field cannot be found, return null
- In "additional_notes", capture any critical terms not fitting the schema
- Return ONLY valid JSON, no additional text or explanation`)
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
