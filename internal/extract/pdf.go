package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// extractPDF pulls the embedded text layer out of a PDF, page by page.
// The underlying reader panics on some malformed inputs, so the whole walk
// runs under a recover that converts panics into parse failures.
func extractPDF(ctx context.Context, data []byte) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = &ExtractionError{Reason: ReasonParseFailed, Err: fmt.Errorf("pdf reader panic: %v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, &ExtractionError{Reason: ReasonParseFailed, Err: fmt.Errorf("open pdf: %w", err)}
	}

	var b strings.Builder
	pages := r.NumPage()
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			// a single unreadable page is not fatal; the no-text check at
			// the adapter level catches fully unreadable documents
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "--- Page %d ---\n%s", i, text)
	}

	return Result{Text: b.String(), Pages: pages}, nil
}
