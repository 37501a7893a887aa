package constants

// ContractStatus is the canonical status for rows in contracts.
type ContractStatus string

// Stable values (store these exact strings in DB).
const (
	StatusUploaded   ContractStatus = "uploaded"   // record created, analysis not started
	StatusProcessing ContractStatus = "processing" // one analysis attempt in flight
	StatusCompleted  ContractStatus = "completed"  // terminal: current analysis persisted
	StatusFailed     ContractStatus = "failed"     // terminal: error_message set
)

// ContractStatuses holds the allowed status values for filtering.
var ContractStatuses = []string{
	string(StatusUploaded),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusFailed),
}

// Terminal reports whether a status permits starting a fresh analysis attempt.
func (s ContractStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Valid reports whether s is one of the known status values.
func (s ContractStatus) Valid() bool {
	switch s {
	case StatusUploaded, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}
