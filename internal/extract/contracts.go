package extract

import (
	"context"
	"fmt"

	"github.com/rcmkit/contract-analyzer/constants"
)

// Reasons an extraction fails. Both are deterministic for a given byte
// stream, so neither is retried.
const (
	ReasonParseFailed = "parse_failed" // bytes are not a well-formed document of the declared type
	ReasonNoText      = "no_text"      // document parsed but yields no text layer (e.g. scanned PDF)
)

// ExtractionError is a terminal failure of the current analysis attempt.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed (%s)", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Result is the outcome of a successful text extraction.
type Result struct {
	Text  string
	Pages int // zero when the format has no page notion
}

// TextExtractor is the interface the pipeline depends on.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, fileType constants.FileType) (Result, error)
}
