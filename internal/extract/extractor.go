package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rcmkit/contract-analyzer/constants"
)

// Extractor dispatches on the detected file type. The variant set is closed:
// one parser per supported format.
type Extractor struct {
	log *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{log: logger}
}

func (e *Extractor) Extract(ctx context.Context, data []byte, fileType constants.FileType) (Result, error) {
	start := time.Now()

	var (
		res Result
		err error
	)
	switch fileType {
	case constants.FileTypePDF:
		res, err = extractPDF(ctx, data)
	case constants.FileTypeDOCX:
		res, err = extractDOCX(ctx, data)
	default:
		return Result{}, &ExtractionError{
			Reason: ReasonParseFailed,
			Err:    fmt.Errorf("unsupported file type: %s", fileType),
		}
	}
	if err != nil {
		e.log.Error("extract.failed",
			"file_type", fileType, "size", len(data), "err", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, err
	}

	if strings.TrimSpace(res.Text) == "" {
		e.log.Warn("extract.no_text", "file_type", fileType, "pages", res.Pages)
		return Result{}, &ExtractionError{
			Reason: ReasonNoText,
			Err:    fmt.Errorf("no extractable text; document may be scanned or image-only"),
		}
	}

	e.log.Info("extract.ok",
		"file_type", fileType,
		"pages", res.Pages,
		"text_len", len(res.Text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}
