package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Analysis represents one completed extraction pass over a contract.
// Rows are immutable once written; re-analysis inserts a new current row
// and the prior one is retained for audit.
type Analysis struct {
	ID               uuid.UUID       `json:"id"`
	ContractID       uuid.UUID       `json:"contract_id"`
	RawText          string          `json:"raw_text"`
	ExtractedData    json.RawMessage `json:"extracted_data"`
	ModelName        string          `json:"model_name"`
	PromptTokens     int             `json:"prompt_tokens"`
	CompletionTokens int             `json:"completion_tokens"`
	IsCurrent        bool            `json:"is_current"`
	CreatedAt        time.Time       `json:"created_at"`
}
