package llm

import (
	"context"
	"errors"
	"fmt"
)

// AnalyzeRequest carries the extracted contract text to the AI service.
type AnalyzeRequest struct {
	DocumentText string
	FilenameHint string
}

// AnalyzeResult is the raw outcome of one AI-service call. The text is not
// guaranteed to be well-formed JSON; ParseAndNormalize decides that.
type AnalyzeResult struct {
	RawOutput        string
	ModelName        string
	PromptTokens     int
	CompletionTokens int
}

// ContractAnalyzer is the interface the pipeline depends on.
type ContractAnalyzer interface {
	AnalyzeContract(ctx context.Context, req AnalyzeRequest) (AnalyzeResult, error)
}

// ServiceError is a failed AI-service call. Transient errors (timeouts,
// rate limiting, 5xx) are retried per the pipeline's policy; the rest are
// terminal on first occurrence.
type ServiceError struct {
	StatusCode int // zero for transport-level failures
	Transient  bool
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("ai service error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("ai service error: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// IsTransient reports whether err is an AI-service failure worth retrying.
// Context deadline expiry counts as transient: the attempt timed out.
func IsTransient(err error) bool {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Transient
	}
	return errors.Is(err, context.DeadlineExceeded)
}
