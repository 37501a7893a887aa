package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/rcmkit/contract-analyzer/constants"
)

// Contract represents an uploaded contract document for data transfer between layers.
type Contract struct {
	ID                    uuid.UUID                `json:"id"`
	Filename              string                   `json:"filename"` // stored object name
	OriginalFilename      string                   `json:"original_filename"`
	FileType              constants.FileType       `json:"file_type"`
	FileSize              int64                    `json:"file_size"`
	StorageKey            string                   `json:"storage_key"`
	Status                constants.ContractStatus `json:"status"`
	AttemptID             *uuid.UUID               `json:"-"` // analysis attempt token, set while processing
	ErrorMessage          *string                  `json:"error_message,omitempty"`
	UploadedAt            time.Time                `json:"uploaded_at"`
	ProcessingStartedAt   *time.Time               `json:"processing_started_at,omitempty"`
	ProcessingCompletedAt *time.Time               `json:"processing_completed_at,omitempty"`
	CreatedAt             time.Time                `json:"created_at"`
	UpdatedAt             time.Time                `json:"updated_at"`
}

// ContractPage is one page of a contract listing.
type ContractPage struct {
	Contracts  []*Contract `json:"contracts"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// DashboardStats summarizes stored contracts by status.
type DashboardStats struct {
	TotalContracts     int   `json:"total_contracts"`
	CompletedContracts int   `json:"completed_contracts"`
	PendingContracts   int   `json:"pending_contracts"`
	FailedContracts    int   `json:"failed_contracts"`
	TotalStorageBytes  int64 `json:"total_storage_bytes"`
}
